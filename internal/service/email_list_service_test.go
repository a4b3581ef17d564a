package service

import (
	"reflect"
	"testing"

	"landivo-be/internal/dto"
)

func TestNormalizeValues(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "nil input",
			in:   nil,
			want: nil,
		},
		{
			name: "trims whitespace",
			in:   []string{"  West Texas ", "Hot Springs Village"},
			want: []string{"West Texas", "Hot Springs Village"},
		},
		{
			name: "splits comma-joined entries",
			in:   []string{"Marfa, Kingman", "Hot Springs"},
			want: []string{"Marfa", "Kingman", "Hot Springs"},
		},
		{
			name: "drops empties and duplicates",
			in:   []string{"Marfa", "", " ,Marfa, ", "Kingman"},
			want: []string{"Marfa", "Kingman"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeValues(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeValues(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeCriteria(t *testing.T) {
	t.Run("nil payload", func(t *testing.T) {
		if got := normalizeCriteria(nil); got != nil {
			t.Errorf("normalizeCriteria(nil) = %v, want nil", got)
		}
	})

	t.Run("payload with no filters collapses to nil", func(t *testing.T) {
		payload := &dto.ListCriteriaPayload{
			Areas: []string{"", "  "},
			City:  []string{},
		}
		if got := normalizeCriteria(payload); got != nil {
			t.Errorf("normalizeCriteria(%v) = %v, want nil", payload, got)
		}
	})

	t.Run("vip flag alone keeps the criteria", func(t *testing.T) {
		vip := true
		got := normalizeCriteria(&dto.ListCriteriaPayload{IsVIP: &vip})
		if got == nil {
			t.Fatal("expected non-nil criteria")
		}
		if got.IsVIP == nil || !*got.IsVIP {
			t.Errorf("IsVIP = %v, want true", got.IsVIP)
		}
	})

	t.Run("values are normalized per field", func(t *testing.T) {
		got := normalizeCriteria(&dto.ListCriteriaPayload{
			Areas:      []string{"West Texas, Northwest Arizona"},
			BuyerTypes: []string{" CashBuyer ", "CashBuyer"},
		})
		if got == nil {
			t.Fatal("expected non-nil criteria")
		}
		if want := []string{"West Texas", "Northwest Arizona"}; !reflect.DeepEqual(got.Areas, want) {
			t.Errorf("Areas = %v, want %v", got.Areas, want)
		}
		if want := []string{"CashBuyer"}; !reflect.DeepEqual(got.BuyerTypes, want) {
			t.Errorf("BuyerTypes = %v, want %v", got.BuyerTypes, want)
		}
	})
}
