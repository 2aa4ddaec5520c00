package response

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/voucher-console/internal/lib/fielderr"
)

func TestOKWithData(t *testing.T) {
	data := map[string]string{"key": "value"}
	resp := OKWithData(data)

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, data, resp.Data)
}

func TestError(t *testing.T) {
	msg := "something went wrong"
	resp := Error(msg)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, msg, resp.Error)
	assert.Nil(t, resp.Data)
}

func TestValidationError(t *testing.T) {
	errs := fielderr.Errors{}
	errs.Required("maxUses")
	errs.Add("percentageDiscount", "field percentageDiscount must be greater than 0 and at most 100")

	resp := ValidationError(errs)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "field maxUses is a required field, field percentageDiscount must be greater than 0 and at most 100", resp.Error)
	assert.Equal(t, "field maxUses is a required field", resp.Fields["maxUses"])
}
