package domain

import "testing"

func TestComputeQuoteExactTotals(t *testing.T) {
	cases := []struct {
		name     string
		service  ServiceType
		location Location
		duration int
		base     float64
		mult     float64
		total    float64
	}{
		{"studio at studio 2h", ServiceStudio, LocationStudio, 2, 25000, 1.0, 50000},
		{"clip video at home 3h", ServiceClipVideo, LocationDomicile, 3, 35000, 1.3, 136500},
		{"photo outdoor 1h", ServicePhotographie, LocationExterieur, 1, 30000, 1.2, 36000},
		{"event at home 4h", ServiceEvenement, LocationDomicile, 4, 40000, 1.3, 208000},
		{"event at studio 1h", ServiceEvenement, LocationStudio, 1, 40000, 1.0, 40000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := ComputeQuote(tc.service, tc.location, tc.duration)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.BaseRate != tc.base {
				t.Fatalf("base rate: got %v want %v", q.BaseRate, tc.base)
			}
			if q.LocationMultiplier != tc.mult {
				t.Fatalf("multiplier: got %v want %v", q.LocationMultiplier, tc.mult)
			}
			if q.Duration != tc.duration {
				t.Fatalf("duration: got %d want %d", q.Duration, tc.duration)
			}
			if q.Total != tc.total {
				t.Fatalf("total: got %v want %v", q.Total, tc.total)
			}
		})
	}
}

func TestComputeQuoteRejectsBadInput(t *testing.T) {
	if _, err := ComputeQuote(ServiceType("mariage"), LocationStudio, 2); !IsValidation(err) {
		t.Fatalf("unknown service should be a validation error, got %v", err)
	}
	if _, err := ComputeQuote(ServiceStudio, Location("plage"), 2); !IsValidation(err) {
		t.Fatalf("unknown location should be a validation error, got %v", err)
	}
	if _, err := ComputeQuote(ServiceStudio, LocationStudio, 0); !IsValidation(err) {
		t.Fatalf("zero duration should be a validation error, got %v", err)
	}
	if _, err := ComputeQuote(ServiceStudio, LocationStudio, -3); !IsValidation(err) {
		t.Fatalf("negative duration should be a validation error, got %v", err)
	}
}

func TestParseServiceTypeMessage(t *testing.T) {
	_, err := ParseServiceType("invalid")
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Invalid serviceType: invalid" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestParseEnums(t *testing.T) {
	for _, raw := range []string{"studio", "clip_video", "photographie", "evenement"} {
		if _, err := ParseServiceType(raw); err != nil {
			t.Fatalf("service %q should parse: %v", raw, err)
		}
	}
	for _, raw := range []string{"studio", "exterieur", "domicile"} {
		if _, err := ParseLocation(raw); err != nil {
			t.Fatalf("location %q should parse: %v", raw, err)
		}
	}
	for _, raw := range []string{"pending", "confirmed", "completed", "cancelled"} {
		if _, err := ParseReservationStatus(raw); err != nil {
			t.Fatalf("status %q should parse: %v", raw, err)
		}
	}
	if _, err := ParseReservationStatus("archived"); !IsValidation(err) {
		t.Fatalf("unknown status should be a validation error, got %v", err)
	}
	if _, err := ParseMediaType("gif"); !IsValidation(err) {
		t.Fatalf("unknown media type should be a validation error, got %v", err)
	}
}
