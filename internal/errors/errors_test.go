package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"sportstat/domain/core"
)

func TestClassify(t *testing.T) {
	cases := map[error]string{
		core.NewFileReadError("x.csv", stderrors.New("bad")): CodeFileRead,
		core.NewUnsupportedCategoryError("Hockey"):           CodeUnsupportedCategory,
		core.NewNoApplicableColumnsError("Football"):         CodeNoApplicableColumns,
		core.NewInsufficientDataError("PTS", 1):              CodeInsufficientData,
		core.NewComputationError("PTS", "zero variance"):     CodeComputation,
		core.NewColumnNotFoundError("xG"):                    CodeNotFound,
		core.ErrSessionNotFound:                              CodeNotFound,
		core.ErrInvalidParameters:                            CodeInvalidInput,
		stderrors.New("something else"):                      CodeInternalError,
	}
	for err, want := range cases {
		assert.Equal(t, want, Classify(err), err.Error())
	}
	assert.Equal(t, "", Classify(nil))
}

func TestWrapKeepsCodeAndChain(t *testing.T) {
	err := Wrap(core.NewInsufficientDataError("PTS", 1), "analysis failed")

	assert.Equal(t, CodeInsufficientData, GetCode(err))
	assert.ErrorIs(t, err, core.ErrInsufficientData)
	assert.Contains(t, err.Error(), "analysis failed")

	again := Wrapf(err, "column %s", "PTS")
	assert.Equal(t, CodeInsufficientData, GetCode(again))
	assert.ErrorIs(t, again, core.ErrInsufficientData)

	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(CodeNoApplicableColumns))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(CodeUnsupportedCategory))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(CodeInsufficientData))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(CodeFileRead))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(CodeInternalError))
}
