// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol is a known stock ticker in the catalog.
// BasePrice is the fixed starting price of the synthetic series for this ticker.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	BasePrice float64   `gorm:"not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// DefaultSymbols returns the fixed base-price table seeded into the catalog.
func DefaultSymbols() []Symbol {
	return []Symbol{
		{Code: "AAPL", Name: "Apple Inc.", BasePrice: 180, IsActive: true, SortKey: 1},
		{Code: "MSFT", Name: "Microsoft Corporation", BasePrice: 350, IsActive: true, SortKey: 2},
		{Code: "GOOGL", Name: "Alphabet Inc.", BasePrice: 140, IsActive: true, SortKey: 3},
		{Code: "AMZN", Name: "Amazon.com, Inc.", BasePrice: 160, IsActive: true, SortKey: 4},
		{Code: "META", Name: "Meta Platforms, Inc.", BasePrice: 450, IsActive: true, SortKey: 5},
		{Code: "TSLA", Name: "Tesla, Inc.", BasePrice: 200, IsActive: true, SortKey: 6},
	}
}
