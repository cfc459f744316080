package services

import (
	domainagg "github.com/yungbote/tasknotes-backend/internal/domain/aggregates"
)

// absence turns an aggregate not_found into the (ok=false, nil) read-style result.
func absence(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if domainagg.IsCode(err, domainagg.CodeNotFound) {
		return false, nil
	}
	return false, err
}
