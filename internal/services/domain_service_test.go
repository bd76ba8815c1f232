package services

import (
	"context"
	"testing"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/testutil"
)

func TestDomainService_Check(t *testing.T) {
	repo := testutil.NewMockDomainRepository()
	repo.Registered["taken.com"] = true
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := NewDomainService(repo, log)

	tests := []struct {
		name          string
		domain        string
		wantErr       bool
		wantTLD       string
		wantAvailable bool
		wantPrice     int64
	}{
		{
			name:          "available com domain",
			domain:        "belajar.com",
			wantTLD:       "com",
			wantAvailable: true,
			wantPrice:     175000,
		},
		{
			name:          "registered domain is unavailable",
			domain:        "taken.com",
			wantTLD:       "com",
			wantAvailable: false,
			wantPrice:     175000,
		},
		{
			name:          "longest TLD suffix wins",
			domain:        "belajar.co.id",
			wantTLD:       "co.id",
			wantAvailable: true,
			wantPrice:     325000,
		},
		{
			name:          "input is normalized",
			domain:        "  Belajar.COM ",
			wantTLD:       "com",
			wantAvailable: true,
			wantPrice:     175000,
		},
		{
			name:    "unsupported TLD is rejected",
			domain:  "belajar.xyz",
			wantErr: true,
		},
		{
			name:    "bare TLD is rejected",
			domain:  ".com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Check(context.Background(), tt.domain)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if res.TLD != tt.wantTLD {
				t.Errorf("Check() tld = %v, want %v", res.TLD, tt.wantTLD)
			}
			if res.Available != tt.wantAvailable {
				t.Errorf("Check() available = %v, want %v", res.Available, tt.wantAvailable)
			}
			if res.YearlyPriceIDR != tt.wantPrice {
				t.Errorf("Check() price = %v, want %v", res.YearlyPriceIDR, tt.wantPrice)
			}
		})
	}
}

func TestDomainService_CheckAll(t *testing.T) {
	repo := testutil.NewMockDomainRepository()
	repo.Registered["belajar.id"] = true
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := NewDomainService(repo, log)

	results, err := svc.CheckAll(context.Background(), "belajar")
	if err != nil {
		t.Fatalf("CheckAll() error = %v", err)
	}

	if len(results) != len(catalog.TLDPrices) {
		t.Fatalf("CheckAll() returned %d results, want %d", len(results), len(catalog.TLDPrices))
	}

	for _, res := range results {
		wantAvailable := res.Domain != "belajar.id"
		if res.Available != wantAvailable {
			t.Errorf("CheckAll() %s available = %v, want %v", res.Domain, res.Available, wantAvailable)
		}
		price, ok := catalog.TLDPriceFor(res.TLD)
		if !ok || res.YearlyPriceIDR != price.YearlyPriceIDR {
			t.Errorf("CheckAll() %s price = %v, want %v", res.Domain, res.YearlyPriceIDR, price.YearlyPriceIDR)
		}
	}

	if _, err := svc.CheckAll(context.Background(), "not a domain"); err == nil {
		t.Error("CheckAll() with invalid name should fail")
	}
}
