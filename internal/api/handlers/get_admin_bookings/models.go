package get_admin_bookings

import (
	"net/url"
	"strconv"

	"github.com/m04kA/curbside-pickup/internal/domain"
	"github.com/m04kA/curbside-pickup/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// Пустые page и limit заменяются значениями по умолчанию в сервисе.
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		Status: query.Get("status"),
		Date:   query.Get("date"),
	}

	validationErr := &domain.ValidationError{}

	if s := query.Get("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil || page <= 0 {
			validationErr.Add("page", "must be a positive number")
		}
		req.Page = page
	}

	if s := query.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit <= 0 {
			validationErr.Add("limit", "must be between 1 and 100")
		}
		req.Limit = limit
	}

	if validationErr.HasErrors() {
		return nil, validationErr
	}
	return req, nil
}
