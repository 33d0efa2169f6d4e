package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "taskboard/pkg/errors"
)

func TestHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusBadRequest, "bad")
	if err.Error() != "bad" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	wrapped := fmt.Errorf("handler: %w", err)
	var httpErr *pkgErrors.HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("expected errors.As to find HTTPError")
	}
	if httpErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.StatusCode)
	}
}
