package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/product-catalog/internal/models"
)

type testProduct struct {
	Key   *int64        `json:"productKey" validate:"required"`
	Name  string        `json:"productName" validate:"notblank,max=96"`
	Model *string       `json:"model" validate:"omitempty,max=32"`
	Price *models.Price `json:"price" validate:"required,gte=0"`
}

func validProduct() testProduct {
	key := int64(1)
	price := models.MustPrice("9.99")
	return testProduct{Key: &key, Name: "Widget", Price: &price}
}

func fieldsOf(errs []ValidationError) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		fields[e.Field] = e.Tag
	}
	return fields
}

func TestValidateStructAcceptsValidProduct(t *testing.T) {
	p := validProduct()
	assert.NoError(t, ValidateStruct(&p))
}

func TestValidateStructZeroValuesArePresent(t *testing.T) {
	p := validProduct()
	zeroKey := int64(0)
	zeroPrice := models.MustPrice("0")
	p.Key = &zeroKey
	p.Price = &zeroPrice

	assert.NoError(t, ValidateStruct(&p))
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	p := testProduct{Name: "  "}

	errs := GetValidationErrors(ValidateStruct(&p))

	assert.Equal(t, map[string]string{
		"productKey":  "required",
		"productName": "notblank",
		"price":       "required",
	}, fieldsOf(errs))
}

func TestValidateStructNegativePrice(t *testing.T) {
	p := validProduct()
	negative := models.MustPrice("-0.01")
	p.Price = &negative

	errs := GetValidationErrors(ValidateStruct(&p))

	require.Len(t, errs, 1)
	assert.Equal(t, "price", errs[0].Field)
	assert.Equal(t, "gte", errs[0].Tag)
	assert.Equal(t, "price must be greater than or equal to 0", errs[0].Message)
}

func TestValidateStructLengthLimits(t *testing.T) {
	p := validProduct()
	p.Name = strings.Repeat("n", 97)
	model := strings.Repeat("m", 33)
	p.Model = &model

	errs := GetValidationErrors(ValidateStruct(&p))

	assert.Equal(t, map[string]string{
		"productName": "max",
		"model":       "max",
	}, fieldsOf(errs))
}

func TestGetValidationErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
	assert.Empty(t, GetValidationErrors(assert.AnError))
}
