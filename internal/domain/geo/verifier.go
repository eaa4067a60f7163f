package geo

import (
	"fmt"

	domainerrors "pricemap/internal/domain/errors"
)

// Default verification thresholds.
const (
	DefaultMaxReportDistanceMeters = 50.0
	DefaultMaxGPSAccuracyMeters    = 100.0
	DefaultAtShopDistanceMeters    = 10.0
)

// Rejection identifies why a verification failed.
type Rejection int

const (
	RejectionNone Rejection = iota
	RejectionInvalidCoordinates
	RejectionTooFar
	RejectionLowAccuracy
)

// VerifierConfig holds the verification thresholds in meters.
type VerifierConfig struct {
	MaxReportDistanceMeters float64
	MaxGPSAccuracyMeters    float64
	AtShopDistanceMeters    float64
}

// Verifier decides whether a reporter is close enough to a shop to be trusted.
type Verifier struct {
	cfg VerifierConfig
}

// Verification is the outcome of Verify.
type Verification struct {
	Accepted       bool
	DistanceMeters float64
	Message        string
	Rejection      Rejection
	limitMeters    float64
}

// NewVerifier creates a verifier. Zero thresholds fall back to the defaults.
func NewVerifier(cfg VerifierConfig) *Verifier {
	if cfg.MaxReportDistanceMeters <= 0 {
		cfg.MaxReportDistanceMeters = DefaultMaxReportDistanceMeters
	}
	if cfg.MaxGPSAccuracyMeters <= 0 {
		cfg.MaxGPSAccuracyMeters = DefaultMaxGPSAccuracyMeters
	}
	if cfg.AtShopDistanceMeters <= 0 {
		cfg.AtShopDistanceMeters = DefaultAtShopDistanceMeters
	}

	return &Verifier{cfg: cfg}
}

// MaxReportDistance returns the proximity limit in meters.
func (v *Verifier) MaxReportDistance() float64 {
	return v.cfg.MaxReportDistanceMeters
}

// Verify checks a reporter position against a shop position. gpsAccuracy is
// the optional accuracy radius reported by the device.
//
// Coordinates are range-checked first so a distance is never computed from
// garbage, then the distance limit, then the accuracy threshold.
func (v *Verifier) Verify(userLat, userLon, shopLat, shopLon float64, gpsAccuracy *float64) Verification {
	if !IsValidCoordinate(userLat, userLon) || !IsValidCoordinate(shopLat, shopLon) {
		return Verification{
			Message:   "Invalid coordinates provided",
			Rejection: RejectionInvalidCoordinates,
		}
	}

	distance := Distance(userLat, userLon, shopLat, shopLon)

	if distance > v.cfg.MaxReportDistanceMeters {
		return Verification{
			DistanceMeters: distance,
			Message: fmt.Sprintf("You are %.1fm away from the shop. You must be within %.0fm to report prices.",
				distance, v.cfg.MaxReportDistanceMeters),
			Rejection:   RejectionTooFar,
			limitMeters: v.cfg.MaxReportDistanceMeters,
		}
	}

	if gpsAccuracy != nil && *gpsAccuracy > v.cfg.MaxGPSAccuracyMeters {
		return Verification{
			DistanceMeters: distance,
			Message: fmt.Sprintf("GPS accuracy is too low (±%.0fm). Please ensure better GPS signal for accurate reporting.",
				*gpsAccuracy),
			Rejection: RejectionLowAccuracy,
		}
	}

	msg := fmt.Sprintf("Location verified - You are %.1fm from the shop", distance)
	if distance <= v.cfg.AtShopDistanceMeters {
		msg = "Location verified - You are at the shop"
	}

	return Verification{
		Accepted:       true,
		DistanceMeters: distance,
		Message:        msg,
	}
}

// Err converts a rejected verification into the matching domain error, or nil.
func (r Verification) Err() error {
	switch r.Rejection {
	case RejectionNone:
		return nil
	case RejectionInvalidCoordinates:
		return domainerrors.ErrInvalidCoordinates.WithMessage(r.Message)
	case RejectionTooFar:
		return domainerrors.NewTooFarError(r.DistanceMeters, r.limitMeters)
	case RejectionLowAccuracy:
		return domainerrors.ErrGPSAccuracyTooLow.WithMessage(r.Message)
	default:
		return domainerrors.ErrValidationFailed.WithMessage(r.Message)
	}
}
