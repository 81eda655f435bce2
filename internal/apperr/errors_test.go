package apperr_test

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/linqs/srinivasan-mlj20/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError(t *testing.T) {
	err := apperr.NewConfig("unknown evaluator %q", "Bogus")
	assert.Equal(t, `unknown evaluator "Bogus"`, err.Error())
	assert.Nil(t, err.Unwrap())

	inner := fmt.Errorf("yaml: line 3")
	wrapped := apperr.NewConfigWrap("parse dataset properties", inner)
	assert.Equal(t, "parse dataset properties: yaml: line 3", wrapped.Error())
	assert.True(t, errors.Is(wrapped, inner))
}

func TestIsFatal_SurvivesWrapping(t *testing.T) {
	original := apperr.NewConfig("method %q not supported", "alchemy")
	doubleWrapped := fmt.Errorf("condition cora/MLE: %w", fmt.Errorf("reduce: %w", original))

	assert.True(t, apperr.IsFatal(doubleWrapped))
	assert.False(t, apperr.IsFatal(fmt.Errorf("plain: %w", apperr.ErrNotFound)))
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "not found", err: apperr.NotFound(fs.ErrNotExist), want: "FileNotFoundError"},
		{name: "empty", err: apperr.Empty("no completion line"), want: "EmptyDataError"},
		{name: "malformed", err: apperr.Malformed("bad value %q", "x"), want: "MalformedDataError"},
		{name: "other", err: errors.New("boom"), want: "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.Kind(tt.err))
		})
	}
}

func TestFoldError(t *testing.T) {
	err := apperr.NewFold("results/cora/MLE/Discrete/entropy/fold2", apperr.NotFound(fs.ErrNotExist))

	assert.Equal(t,
		"results/cora/MLE/Discrete/entropy/fold2: [FileNotFoundError] artifact not found: file does not exist",
		err.Error())
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var fe *apperr.FoldError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &fe))
	assert.Equal(t, "results/cora/MLE/Discrete/entropy/fold2", fe.Path)
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"validation", apperr.NewValidation("unknown query parameter"), http.StatusBadRequest, `"title":"invalid request"`},
		{"not found", fmt.Errorf("%w: no report", apperr.ErrNotFound), http.StatusNotFound, `"error":"artifact not found: no report"`},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed, `"error":"nope"`},
		{"other", errors.New("boom"), http.StatusInternalServerError, `"error":"internal server error"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			apperr.GlobalErrorHandler()(tt.err, c)

			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}
