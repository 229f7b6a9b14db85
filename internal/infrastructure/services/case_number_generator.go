package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

// CaseNumberGenerator issues sequential case numbers of the form
// TRI-YYYYMMDD-NNNN. The sequence resets each day.
type CaseNumberGenerator struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache map[string]int
}

func NewCaseNumberGenerator(db *gorm.DB) *CaseNumberGenerator {
	return &CaseNumberGenerator{
		db:    db,
		cache: make(map[string]int),
	}
}

func (g *CaseNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateStr := time.Now().Format("20060102")
	prefix := fmt.Sprintf("TRI-%s-", dateStr)

	seq, err := g.getNextSequence(ctx, dateStr)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

func (g *CaseNumberGenerator) getNextSequence(ctx context.Context, dateStr string) (int, error) {
	if seq, ok := g.cache[dateStr]; ok {
		g.cache[dateStr] = seq + 1
		return seq + 1, nil
	}

	// MAX() over zero rows is NULL, so scan through a pointer.
	var maxNumber *string
	prefix := fmt.Sprintf("TRI-%s-%%", dateStr)

	err := g.db.WithContext(ctx).
		Table("triage_cases").
		Select("MAX(number)").
		Where("number LIKE ?", prefix).
		Scan(&maxNumber).Error

	if err != nil && err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to get max case number: %w", err)
	}

	seq := 1
	if maxNumber != nil && *maxNumber != "" {
		fmt.Sscanf(*maxNumber, prefix[:len(prefix)-1]+"%d", &seq)
		seq++
	}

	g.cache[dateStr] = seq
	return seq, nil
}
