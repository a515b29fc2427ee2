package handlers_test

import (
	"DonorLink/entities"
	"DonorLink/internal/api/handlers"
	"DonorLink/internal/api/routes"
	"DonorLink/internal/middleware"
	"DonorLink/internal/utils"
	"DonorLink/internal/utils/storage"
	"DonorLink/pkg/account"
	"DonorLink/pkg/donation"
	"DonorLink/pkg/jwt"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the full route graph over in-memory SQLite. A non-nil
// store overrides the default local upload storage.
func newTestApp(t *testing.T, store storage.Storage) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entities.Donor{}, &entities.Ngo{}, &entities.Donation{}))

	utils.InitValidator()
	uploadDir := t.TempDir()

	if store == nil {
		store = storage.NewLocalStorage(uploadDir)
	}

	jwtService := jwt.NewJWTService()
	accountService := account.NewAccountService(account.NewDonorRepository(db), account.NewNgoRepository(db), jwtService)
	donationService := donation.NewDonationService(donation.NewDonationRepository(db), store, nil)

	app := fiber.New()
	routesConfig := routes.Config{
		App:             app,
		AccountHandler:  handlers.NewAccountHandler(accountService, utils.Validate, jwtService),
		DonationHandler: handlers.NewDonationHandler(donationService, utils.Validate),
		Middleware:      middleware.NewMiddleware(),
		JWTService:      jwtService,
		UploadDir:       uploadDir,
	}
	routesConfig.Setup()
	return app
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	return res.StatusCode, env
}

func registerAndLogin(t *testing.T, app *fiber.App, name, email, role string) string {
	t.Helper()

	code, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"name":            name,
		"email":           email,
		"password":        "secret123",
		"confirmPassword": "secret123",
		"phone":           "9876543210",
		"city":            "Bengaluru",
		"pincode":         "560001",
		"type":            role,
	})
	require.Equal(t, http.StatusOK, code)

	code, env := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    email,
		"password": "secret123",
		"type":     role,
	})
	require.Equal(t, http.StatusOK, code)

	var login struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)
	return login.User.ID
}

func addDonation(t *testing.T, app *fiber.App, donorID string) int {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"donor_id":  donorID,
		"item_name": "Rice bags",
		"quantity":  "5",
		"address":   "12 MG Road",
		"city":      "Bengaluru",
		"pincode":   "560001",
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("photo", "rice.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/donations/add", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()
	return res.StatusCode
}

func listDonations(t *testing.T, app *fiber.App, path string) []map[string]any {
	t.Helper()

	code, env := doJSON(t, app, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &items))
	return items
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t, nil)

	code, env := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"name":            "Asha Rao",
		"email":           "asha@example.com",
		"password":        "secret123",
		"confirmPassword": "different",
		"phone":           "9876543210",
		"city":            "Bengaluru",
		"pincode":         "560001",
		"type":            "donor",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env.Status)
}

func TestVerifyToken(t *testing.T) {
	app := newTestApp(t, nil)

	code, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"name":            "Asha Rao",
		"email":           "asha@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"phone":           "9876543210",
		"city":            "Bengaluru",
		"pincode":         "560001",
		"type":            "donor",
	})
	require.Equal(t, http.StatusOK, code)

	_, env := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "asha@example.com",
		"password": "secret123",
		"type":     "donor",
	})
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Garbage token is a 401.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	res, err = app.Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// Full first-claim-wins scenario: one pending donation, two NGOs accept
// concurrently. Exactly one wins; the loser is told it is already accepted.
func TestConcurrentAcceptExactlyOneWins(t *testing.T) {
	app := newTestApp(t, nil)

	donorID := registerAndLogin(t, app, "Asha Rao", "asha@example.com", "donor")
	ngoA := registerAndLogin(t, app, "Helping Hands", "hands@example.org", "ngo")
	ngoB := registerAndLogin(t, app, "Food For All", "food@example.org", "ngo")

	require.Equal(t, http.StatusOK, addDonation(t, app, donorID))

	nearby := listDonations(t, app, "/api/donations/nearby/560001")
	require.Len(t, nearby, 1)
	assert.Equal(t, "Asha Rao", nearby[0]["donor_name"])
	assert.Equal(t, "Pending", nearby[0]["status"])
	donationID := nearby[0]["id"].(string)

	codes := make([]int, 2)
	bodies := make([]envelope, 2)
	var wg sync.WaitGroup
	for i, ngoID := range []string{ngoA, ngoB} {
		wg.Add(1)
		go func(i int, ngoID string) {
			defer wg.Done()
			codes[i], bodies[i] = doJSON(t, app, http.MethodPost, "/api/donations/accept", fiber.Map{
				"donation_id": donationID,
				"ngo_id":      ngoID,
			})
		}(i, ngoID)
	}
	wg.Wait()

	winner, loser := 0, 1
	if codes[0] != http.StatusOK {
		winner, loser = 1, 0
	}
	require.Equal(t, http.StatusOK, codes[winner])
	require.Equal(t, http.StatusBadRequest, codes[loser])
	assert.Contains(t, bodies[loser].Error, "already accepted")

	winnerID := []string{ngoA, ngoB}[winner]
	loserID := []string{ngoA, ngoB}[loser]

	won := listDonations(t, app, "/api/donations/ngo/"+winnerID)
	require.Len(t, won, 1)
	assert.Equal(t, donationID, won[0]["id"])
	assert.Equal(t, "Asha Rao", won[0]["donor_name"])

	lost := listDonations(t, app, "/api/donations/ngo/"+loserID)
	assert.Empty(t, lost)

	// Claimed donations disappear from the nearby feed.
	assert.Empty(t, listDonations(t, app, "/api/donations/nearby/560001"))

	// The donor now sees the winning NGO's contact details.
	mine := listDonations(t, app, "/api/donations/donor/"+donorID)
	require.Len(t, mine, 1)
	assert.Equal(t, "Accepted", mine[0]["status"])
	assert.NotEmpty(t, mine[0]["ngo_name"])
	assert.NotEmpty(t, mine[0]["ngo_email"])
}

// A failure writing the photo to disk is a server-side fault, not bad input.
func TestCreateDonationStorageFailureIs500(t *testing.T) {
	// Point the upload base at a regular file so MkdirAll fails.
	base := filepath.Join(t.TempDir(), "uploads")
	require.NoError(t, os.WriteFile(base, []byte("not a directory"), 0o644))
	app := newTestApp(t, storage.NewLocalStorage(base))

	donorID := registerAndLogin(t, app, "Asha Rao", "asha@example.com", "donor")
	assert.Equal(t, http.StatusInternalServerError, addDonation(t, app, donorID))
}
