package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest("GET", "/products?"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	cases := []struct {
		query   string
		want    PaginationParams
		wantErr bool
	}{
		{"", PaginationParams{Limit: DefaultLimit, Offset: DefaultOffset}, false},
		{"limit=5", PaginationParams{Limit: 5, Offset: 0}, false},
		{"limit=5&offset=20", PaginationParams{Limit: 5, Offset: 20}, false},
		{"limit=0", PaginationParams{Limit: 0, Offset: 0}, false},
		{"limit=", PaginationParams{Limit: DefaultLimit, Offset: 0}, false},
		{"limit=-1", PaginationParams{}, true},
		{"offset=-1", PaginationParams{}, true},
		{"limit=abc", PaginationParams{}, true},
		{"offset=1.5", PaginationParams{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			params, err := GetPaginationParams(contextWithQuery(tc.query))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, params)
		})
	}
}

type sizedRequest struct {
	Name  string   `validate:"required"`
	Sizes []string `validate:"omitempty,dive,product_size"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(&sizedRequest{Name: "a", Sizes: []string{"XS", "XXXL"}}))

	err := ValidateStruct(&sizedRequest{Sizes: []string{"XXS"}})
	require.Error(t, err)

	validationErrors := GetValidationErrors(err)
	require.Len(t, validationErrors, 2)
	assert.Equal(t, "name", validationErrors[0].Field)
	assert.Equal(t, "required", validationErrors[0].Tag)
	assert.Equal(t, "product_size", validationErrors[1].Tag)
	assert.Contains(t, validationErrors[1].Message, "XS S M L XL XXL XXXL")
}

func TestGetValidationErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
	assert.Empty(t, GetValidationErrors(assert.AnError))
}

func TestTokenManager(t *testing.T) {
	tokens := NewTokenManager("secret", 1)

	token, err := tokens.GenerateJWT("user-1", "admin")
	require.NoError(t, err)

	claims, err := tokens.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "catalog-api", claims.Issuer)

	_, err = NewTokenManager("other", 1).ValidateJWT(token)
	assert.Error(t, err)

	_, err = tokens.ValidateJWT("garbage")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, CheckPassword(hash, "s3cret"))
	assert.Error(t, CheckPassword(hash, "wrong"))

	assert.True(t, ConstantTimeEqual("admin", "admin"))
	assert.False(t, ConstantTimeEqual("admin", "Admin"))
}
