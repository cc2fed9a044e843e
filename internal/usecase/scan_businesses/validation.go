package scan_businesses

import (
	"fmt"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// validateRequest валидирует входные данные запроса сканирования
func validateRequest(req *Request) error {
	if req.Latitude < -90 || req.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be in [-90, 90]", ErrInvalidInput)
	}

	if req.Longitude < -180 || req.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be in [-180, 180]", ErrInvalidInput)
	}

	if req.RadiusMeters < domain.MinScanRadiusMeters || req.RadiusMeters > domain.MaxScanRadiusMeters {
		return fmt.Errorf("%w: radius must be in [%d, %d] meters",
			ErrInvalidInput, domain.MinScanRadiusMeters, domain.MaxScanRadiusMeters)
	}

	return nil
}
