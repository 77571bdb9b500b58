package handler

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/AlbionStats_Go/internal/domain"
)

func TestHandleCreateDeath(t *testing.T) {
	InitValidator()

	t.Run("success", func(t *testing.T) {
		svc := new(MockDeathService)
		svc.On("RecordDeath", mock.Anything, mock.MatchedBy(func(d *domain.Death) bool {
			return d.Character == "Bob" && d.ValueLost.Equal(decimal.NewFromInt(250000))
		})).Return(nil)
		h := NewDeathHandler(svc)

		body := `{"date":"2024-03-01","character":"Bob","value_lost":"250000","description":"ganked"}`
		rec := serve(http.MethodPost, "/deaths", "/deaths", body, h.HandleCreateDeath)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"character":"Bob"`)
		svc.AssertExpectations(t)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		h := NewDeathHandler(new(MockDeathService))

		rec := serve(http.MethodPost, "/deaths", "/deaths", `{"date":`, h.HandleCreateDeath)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"`+ErrMsgInvalidRequest+`"}`, rec.Body.String())
	})

	t.Run("presence check from service", func(t *testing.T) {
		svc := new(MockDeathService)
		svc.On("RecordDeath", mock.Anything, mock.Anything).
			Return(domain.ErrInvalidInput)
		h := NewDeathHandler(svc)

		body := `{"date":"2024-03-01","character":"Bob","value_lost":1}`
		rec := serve(http.MethodPost, "/deaths", "/deaths", body, h.HandleCreateDeath)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.ErrMsgInvalidInput)
	})
}

func TestHandleListDeaths(t *testing.T) {
	svc := new(MockDeathService)
	svc.On("ListDeaths", mock.Anything, domain.DeathFilter{Character: "Bob"}).
		Return([]domain.Death{{ID: 1, Character: "Bob", ValueLost: decimal.NewFromInt(5)}}, nil)
	h := NewDeathHandler(svc)

	rec := serve(http.MethodGet, "/deaths", "/deaths?character=Bob&date=Todas", "", h.HandleListDeaths)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value_lost":"5"`)
	svc.AssertExpectations(t)
}

func TestHandleDeleteDeath(t *testing.T) {
	svc := new(MockDeathService)
	svc.On("DeleteDeath", mock.Anything, int64(99)).Return(nil)
	h := NewDeathHandler(svc)

	rec := serve(http.MethodDelete, "/deaths/{id}", "/deaths/99", "", h.HandleDeleteDeath)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
