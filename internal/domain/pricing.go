package domain

// Quote is the price breakdown returned alongside a created reservation.
// It is derived on the fly and never persisted.
type Quote struct {
	BaseRate           float64 `json:"baseRate"`
	Duration           int     `json:"duration"`
	LocationMultiplier float64 `json:"locationMultiplier"`
	Total              float64 `json:"total"`
}

// BaseRate returns the hourly rate for a service type.
func BaseRate(s ServiceType) (float64, error) {
	switch s {
	case ServiceStudio:
		return 25000, nil
	case ServiceClipVideo:
		return 35000, nil
	case ServicePhotographie:
		return 30000, nil
	case ServiceEvenement:
		return 40000, nil
	default:
		return 0, ValidationError{Field: "serviceType", Msg: "Invalid serviceType: " + string(s)}
	}
}

// LocationMultiplier returns the surcharge factor for a shooting location.
func LocationMultiplier(l Location) (float64, error) {
	switch l {
	case LocationStudio:
		return 1.0, nil
	case LocationExterieur:
		return 1.2, nil
	case LocationDomicile:
		return 1.3, nil
	default:
		return 0, ValidationError{Field: "location", Msg: "Invalid location: " + string(l)}
	}
}

// ComputeQuote builds the full quote: baseRate * duration * multiplier.
func ComputeQuote(s ServiceType, l Location, duration int) (Quote, error) {
	if duration <= 0 {
		return Quote{}, ValidationError{Field: "duration", Msg: "Invalid duration"}
	}
	base, err := BaseRate(s)
	if err != nil {
		return Quote{}, err
	}
	mult, err := LocationMultiplier(l)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		BaseRate:           base,
		Duration:           duration,
		LocationMultiplier: mult,
		Total:              base * float64(duration) * mult,
	}, nil
}
