package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string   `json:"name" binding:"required"`
	Sum   *float64 `json:"sum" binding:"required"`
	Kind  string   `json:"kind" binding:"omitempty,oneof=a b"`
	Short string   `json:"short" binding:"omitempty,min=2"`
}

func TestToDetails_ValidationErrors(t *testing.T) {
	Init()
	err := binding.Validator.ValidateStruct(&sample{Kind: "c", Short: "x"})

	d := ToDetails(err)

	assert.Equal(t, "is required", d["name"])
	assert.Equal(t, "is required", d["sum"])
	assert.Equal(t, "must be one of: a, b", d["kind"])
	assert.Equal(t, "must be at least 2 characters long", d["short"])
}

func TestToDetails_JSONErrors(t *testing.T) {
	var s sample
	err := json.Unmarshal([]byte(`{"name":`), &s)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	err = json.Unmarshal([]byte(`{"sum": "fifteen"}`), &s)
	assert.Equal(t, map[string]string{"sum": "must be a float64"}, ToDetails(err))
}

func TestToDetails_Fallback(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("boom")))
}
