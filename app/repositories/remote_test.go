package repositories

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/pkg/http"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
	"github.com/shashiranjanraj/bizdesk/pkg/testkit"
)

const upstream = "http://bizdesk-upstream.test/api"

// installTransport swaps the shared client's transport for a scenario-built
// mock, so the remote driver's calls never leave the process. Steps match in
// order by URL prefix; list the more specific prefixes first.
func installTransport(t *testing.T, steps ...testkit.MockStep) *testkit.MockTransport {
	t.Helper()
	mt := testkit.NewMockTransport(&testkit.Scenario{
		Name:            t.Name(),
		IsMockRequired:  true,
		NetUtilMockStep: steps,
	})
	http.DefaultClient.Transport = mt
	t.Cleanup(http.ResetTransport)
	return mt
}

// envelopeStep builds an "httprequest" step answering matchURL with the
// envelope the upstream API writes.
func envelopeStep(t *testing.T, matchURL string, status int, env map[string]any) testkit.MockStep {
	t.Helper()
	raw, err := json.Marshal(env)
	require.NoError(t, err)
	return testkit.MockStep{
		Method:   "httprequest",
		IsMock:   true,
		MatchURL: matchURL,
		ReturnData: testkit.MockReturnData{
			StatusCode: status,
			Body:       base64.StdEncoding.EncodeToString(raw),
		},
	}
}

func TestRemoteAll(t *testing.T) {
	mt := installTransport(t, envelopeStep(t, upstream+"/inventory", 200, map[string]any{
		"status": 200,
		"data": []*models.Product{
			{Base: models.Base{ID: 1}, Name: "Widget", Quantity: 4, Price: 9.99},
			{Base: models.Base{ID: 2}, Name: "Gadget", Quantity: 9, Price: 19.99},
		},
	}))

	repo := NewRemote[*models.Product](upstream, "inventory", "sekrit")

	all, err := repo.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Widget", all[0].Name)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Empty(t, mt.AssertAllCalled())
}

func TestRemoteFindMapsNotFound(t *testing.T) {
	mt := installTransport(t,
		envelopeStep(t, upstream+"/inventory/99", 404, map[string]any{
			"status": 404, "message": "Not found",
		}),
		envelopeStep(t, upstream+"/inventory/1", 200, map[string]any{
			"status": 200,
			"data":   &models.Product{Base: models.Base{ID: 1}, Name: "Widget"},
		}),
	)

	repo := NewRemote[*models.Product](upstream, "inventory", "sekrit")

	found, err := repo.Find(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.ID)

	_, err = repo.Find(99)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Empty(t, mt.AssertAllCalled())
}

func TestRemoteCreateMapsValidationError(t *testing.T) {
	installTransport(t, envelopeStep(t, upstream+"/inventory", 422, map[string]any{
		"status": 422,
		"errors": map[string]string{"name": "The name field is required."},
	}))

	repo := NewRemote[*models.Product](upstream, "inventory", "sekrit")

	_, err := repo.Create(&models.Product{})
	var verr *store.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")
}

func TestRemoteUnmockedCallFails(t *testing.T) {
	installTransport(t) // no steps registered

	repo := NewRemote[*models.Product](upstream, "inventory", "")
	_, err := repo.All()
	require.Error(t, err)
}
