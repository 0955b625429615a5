package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-visitor-platform/internal/models"
)

func TestListTicketTypes(t *testing.T) {
	h := NewTicketHandler()

	rec := httptest.NewRecorder()
	h.ListTicketTypes(rec, httptest.NewRequest("GET", "/tickets", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var catalog []ticketResponse
	decodeBody(t, rec, &catalog)
	require.Len(t, catalog, 3)

	assert.Equal(t, models.TicketAdult, catalog[0].ID)
	assert.Equal(t, 3200, catalog[0].Price)
	assert.Equal(t, 32.0, catalog[0].PriceChf)
	assert.Equal(t, 17.0, catalog[2].PriceChf)
}
