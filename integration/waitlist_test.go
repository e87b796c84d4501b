package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thinqscribe/waitlist-api/config"
	"github.com/thinqscribe/waitlist-api/config/router"
	"github.com/thinqscribe/waitlist-api/domain"
	"github.com/thinqscribe/waitlist-api/internal/log"
	"github.com/thinqscribe/waitlist-api/internal/models"
)

type WaitlistAPITestSuite struct {
	suite.Suite
	db        *gorm.DB
	server    *httptest.Server
	baseURL   string
	logger    *log.Logger
	appConfig *config.ApplicationConfig
}

func (suite *WaitlistAPITestSuite) SetupSuite() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.WaitlistEntry{})
	suite.Require().NoError(err)

	suite.logger = log.NewLoggerWithJSONOutput()

	suite.appConfig = &config.ApplicationConfig{
		DB:     suite.db,
		Logger: suite.logger,
	}

	suite.appConfig.RouterService = router.CreateRouterService(suite.logger, &router.RouterConfig{
		RequestTimeout: 30 * time.Second,
	})

	domain.SetupCoreDomain(suite.appConfig)

	suite.server = httptest.NewServer(suite.appConfig.RouterService.GetEngine())
	suite.baseURL = suite.server.URL
}

func (suite *WaitlistAPITestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
	if suite.db != nil {
		sqlDB, _ := suite.db.DB()
		sqlDB.Close()
	}
}

func (suite *WaitlistAPITestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM waitlist_entries")
}

func (suite *WaitlistAPITestSuite) seedEntry(firstName, lastName, email, status string, active bool, createdAt time.Time) models.WaitlistEntry {
	entry := models.WaitlistEntry{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Status:    status,
		IsActive:  active,
		JoinedAt:  createdAt,
		CreatedAt: createdAt,
	}
	suite.Require().NoError(suite.db.Create(&entry).Error)
	return entry
}

func (suite *WaitlistAPITestSuite) postJSON(path string, body any) *http.Response {
	jsonBody, err := json.Marshal(body)
	suite.Require().NoError(err)

	resp, err := http.Post(suite.baseURL+path, "application/json", bytes.NewBuffer(jsonBody))
	suite.Require().NoError(err)
	return resp
}

func (suite *WaitlistAPITestSuite) decode(resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()
	var response map[string]interface{}
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	return response
}

func (suite *WaitlistAPITestSuite) TestHealthCheck() {
	resp, err := http.Get(suite.baseURL + "/health")
	suite.Require().NoError(err)

	suite.Equal(http.StatusOK, resp.StatusCode)

	response := suite.decode(resp)
	suite.Equal(float64(200), response["code"])
	suite.Contains(response["message"], "health check completed")

	data := response["data"].(map[string]interface{})
	suite.Equal(float64(1), data["database"])
	suite.Contains(data, "uptime")
}

func (suite *WaitlistAPITestSuite) TestCreateWaitlistEntry() {
	resp := suite.postJSON("/v1/waitlist", map[string]string{
		"firstName": "  Jo ",
		"lastName":  " Ok ",
		"email":     " JO@Example.COM ",
	})

	suite.Equal(http.StatusCreated, resp.StatusCode)

	response := suite.decode(resp)
	suite.Equal(float64(201), response["code"])
	suite.Contains(response["message"], "joined the waitlist")

	data := response["data"].(map[string]interface{})
	suite.Equal("Jo", data["firstName"])
	suite.Equal("Ok", data["lastName"])
	suite.Equal("jo@example.com", data["email"])
	suite.Equal(models.StatusStudent, data["status"])
	suite.Contains(data, "id")
	suite.Contains(data, "joinedAt")
}

func (suite *WaitlistAPITestSuite) TestCreateWaitlistEntryValidationError() {
	resp := suite.postJSON("/v1/waitlist", map[string]string{
		"firstName": "J",
		"lastName":  "Ok",
		"email":     "invalid-email",
		"status":    "alumni",
	})

	suite.Equal(http.StatusBadRequest, resp.StatusCode)

	response := suite.decode(resp)
	suite.Equal(float64(400), response["code"])
	suite.Contains(response["message"], "Invalid request payload")

	data := response["data"].([]interface{})
	suite.Require().Len(data, 3)

	byField := map[string]string{}
	for _, item := range data {
		fieldError := item.(map[string]interface{})
		byField[fieldError["field"].(string)] = fieldError["message"].(string)
	}

	suite.Contains(byField["firstName"], "at least 2 characters")
	suite.Contains(byField["email"], "valid email address")
	suite.Contains(byField["status"], "not a valid status")
}

func (suite *WaitlistAPITestSuite) TestDuplicateEmailIsCaseInsensitive() {
	resp := suite.postJSON("/v1/waitlist", map[string]string{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
	})
	suite.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = suite.postJSON("/v1/waitlist", map[string]string{
		"firstName": "Janet",
		"lastName":  "Doe",
		"email":     "JANE@Example.com",
	})

	suite.Equal(http.StatusBadRequest, resp.StatusCode)

	response := suite.decode(resp)
	suite.Equal(float64(400), response["code"])
	suite.Contains(response["message"], "already exists")
}

func (suite *WaitlistAPITestSuite) TestDeactivatedEmailStaysReserved() {
	entry := suite.seedEntry("Jane", "Doe", "jane@example.com", models.StatusStudent, true, time.Now().UTC())

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/waitlist/%d", suite.baseURL, entry.ID), nil)
	suite.Require().NoError(err)

	resp, err := http.DefaultClient.Do(req)
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Row survives deactivation.
	var stored models.WaitlistEntry
	suite.Require().NoError(suite.db.First(&stored, entry.ID).Error)
	suite.False(stored.IsActive)

	// And its email cannot be reused by a new signup.
	resp = suite.postJSON("/v1/waitlist", map[string]string{
		"firstName": "Janet",
		"lastName":  "Doe",
		"email":     "jane@example.com",
	})
	suite.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (suite *WaitlistAPITestSuite) TestGetWaitlistEntryByID() {
	entry := suite.seedEntry("Test", "User", "test@example.com", models.StatusEducator, true, time.Now().UTC())

	resp, err := http.Get(fmt.Sprintf("%s/v1/waitlist/%d", suite.baseURL, entry.ID))
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.StatusCode)

	response := suite.decode(resp)
	data := response["data"].(map[string]interface{})
	suite.Equal("test@example.com", data["email"])
	suite.Equal(models.StatusEducator, data["status"])
}

func (suite *WaitlistAPITestSuite) TestGetWaitlistEntryByIDNotFound() {
	resp, err := http.Get(suite.baseURL + "/v1/waitlist/999")
	suite.Require().NoError(err)
	suite.Equal(http.StatusNotFound, resp.StatusCode)

	response := suite.decode(resp)
	suite.Equal(float64(404), response["code"])
	suite.Contains(response["message"], "not found")
}

func (suite *WaitlistAPITestSuite) TestUpdateWaitlistEntry() {
	entry := suite.seedEntry("Original", "User", "original@example.com", models.StatusStudent, true, time.Now().UTC())

	jsonBody, _ := json.Marshal(map[string]string{
		"firstName": "Updated",
		"lastName":  "User",
		"email":     "Updated@Example.com",
		"status":    models.StatusProfessional,
	})

	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/v1/waitlist/%d", suite.baseURL, entry.ID), bytes.NewBuffer(jsonBody))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.StatusCode)

	response := suite.decode(resp)
	suite.Contains(response["message"], "updated successfully")

	data := response["data"].(map[string]interface{})
	suite.Equal("updated@example.com", data["email"])
	suite.Equal(models.StatusProfessional, data["status"])

	var updated models.WaitlistEntry
	suite.Require().NoError(suite.db.First(&updated, entry.ID).Error)
	suite.Equal("Updated", updated.FirstName)
	suite.Equal("updated@example.com", updated.Email)
}

func (suite *WaitlistAPITestSuite) TestListPaginationAndGlobalCounts() {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 22; i++ {
		status := models.StatusStudent
		if i%2 == 1 {
			status = models.StatusEducator
		}
		suite.seedEntry("User", fmt.Sprintf("Number%02d", i), fmt.Sprintf("user%02d@example.com", i), status, true, base.Add(time.Duration(i)*time.Minute))
	}
	// Inactive entries never show up in listings or counts.
	suite.seedEntry("Gone", "Away", "gone@example.com", models.StatusOther, false, base)

	resp, err := http.Get(suite.baseURL + "/v1/waitlist?page=2&limit=10&status=" + models.StatusStudent)
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.StatusCode)

	response := suite.decode(resp)
	payload := response["data"].(map[string]interface{})

	// 11 students filtered, page 2 of limit 10 holds the last one.
	entries := payload["data"].([]interface{})
	suite.Len(entries, 1)

	pagination := payload["pagination"].(map[string]interface{})
	suite.Equal(float64(2), pagination["currentPage"])
	suite.Equal(float64(2), pagination["totalPages"])
	suite.Equal(float64(11), pagination["totalEntries"])
	suite.Equal(float64(10), pagination["entriesPerPage"])

	// Status counts stay global across the active waitlist, unaffected by
	// the status filter.
	statusCounts := payload["statusCounts"].(map[string]interface{})
	suite.Equal(float64(11), statusCounts[models.StatusStudent])
	suite.Equal(float64(11), statusCounts[models.StatusEducator])
	suite.NotContains(statusCounts, models.StatusOther)
}

func (suite *WaitlistAPITestSuite) TestListSearchMatchesAnyField() {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	suite.seedEntry("Anna", "Smith", "anna@example.com", models.StatusStudent, true, base)
	suite.seedEntry("Bob", "Mannheim", "bob@example.com", models.StatusStudent, true, base.Add(time.Minute))
	suite.seedEntry("Carol", "Jones", "carol@annex.org", models.StatusStudent, true, base.Add(2*time.Minute))
	suite.seedEntry("Dave", "Brown", "dave@example.com", models.StatusStudent, true, base.Add(3*time.Minute))

	resp, err := http.Get(suite.baseURL + "/v1/waitlist?search=" + url.QueryEscape("ANN"))
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.StatusCode)

	response := suite.decode(resp)
	payload := response["data"].(map[string]interface{})
	entries := payload["data"].([]interface{})
	suite.Len(entries, 3)

	emails := make([]string, 0, len(entries))
	for _, item := range entries {
		emails = append(emails, item.(map[string]interface{})["email"].(string))
	}
	suite.Contains(emails, "anna@example.com")
	suite.Contains(emails, "bob@example.com")
	suite.Contains(emails, "carol@annex.org")
	suite.NotContains(emails, "dave@example.com")
}

func (suite *WaitlistAPITestSuite) TestListSearchWildcardsAreLiteral() {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	suite.seedEntry("Anna", "Smith", "anna@example.com", models.StatusStudent, true, base)
	suite.seedEntry("Bob", "Jones", "bob@example.com", models.StatusStudent, true, base.Add(time.Minute))
	suite.seedEntry("Carol", "100%legit", "carol@example.com", models.StatusStudent, true, base.Add(2*time.Minute))

	// "%" is a LIKE wildcard but the search term treats it literally, so it
	// matches only the entry whose name actually contains one.
	resp, err := http.Get(suite.baseURL + "/v1/waitlist?search=" + url.QueryEscape("%"))
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.StatusCode)

	payload := suite.decode(resp)["data"].(map[string]interface{})
	entries := payload["data"].([]interface{})
	suite.Require().Len(entries, 1)
	suite.Equal("carol@example.com", entries[0].(map[string]interface{})["email"])

	// Same for "_": no entry contains a literal underscore.
	resp, err = http.Get(suite.baseURL + "/v1/waitlist?search=" + url.QueryEscape("_"))
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.StatusCode)

	payload = suite.decode(resp)["data"].(map[string]interface{})
	suite.Empty(payload["data"].([]interface{}))
	suite.Equal(float64(0), payload["pagination"].(map[string]interface{})["totalEntries"])
}

func (suite *WaitlistAPITestSuite) TestListSortOrder() {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	suite.seedEntry("Zoe", "Young", "zoe@example.com", models.StatusStudent, true, base)
	suite.seedEntry("Amy", "Adams", "amy@example.com", models.StatusStudent, true, base.Add(time.Minute))

	resp, err := http.Get(suite.baseURL + "/v1/waitlist?sortBy=firstName&order=asc")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.StatusCode)

	response := suite.decode(resp)
	payload := response["data"].(map[string]interface{})
	entries := payload["data"].([]interface{})
	suite.Require().Len(entries, 2)
	suite.Equal("Amy", entries[0].(map[string]interface{})["firstName"])
	suite.Equal("Zoe", entries[1].(map[string]interface{})["firstName"])

	// Default order is newest first.
	resp, err = http.Get(suite.baseURL + "/v1/waitlist")
	suite.Require().NoError(err)

	response = suite.decode(resp)
	payload = response["data"].(map[string]interface{})
	entries = payload["data"].([]interface{})
	suite.Require().Len(entries, 2)
	suite.Equal("Amy", entries[0].(map[string]interface{})["firstName"])
}

func (suite *WaitlistAPITestSuite) TestStatsOverview() {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		suite.seedEntry("Student", fmt.Sprintf("Number%d", i), fmt.Sprintf("student%d@example.com", i), models.StatusStudent, true, base.Add(time.Duration(i)*time.Minute))
	}
	suite.seedEntry("Eve", "Educator", "eve@example.com", models.StatusEducator, true, base.Add(time.Hour))
	suite.seedEntry("Gone", "Away", "gone@example.com", models.StatusOther, false, base)

	resp, err := http.Get(suite.baseURL + "/v1/waitlist/stats/overview")
	suite.Require().NoError(err)
	suite.Equal(http.StatusOK, resp.StatusCode)

	response := suite.decode(resp)
	data := response["data"].(map[string]interface{})

	suite.Equal(float64(8), data["totalEntries"])

	breakdown := data["statusBreakdown"].(map[string]interface{})
	suite.Equal(float64(7), breakdown[models.StatusStudent])
	suite.Equal(float64(1), breakdown[models.StatusEducator])

	recent := data["recentEntries"].([]interface{})
	suite.Require().Len(recent, 5)

	newest := recent[0].(map[string]interface{})
	suite.Equal("Eve", newest["firstName"])
	suite.Equal("Educator", newest["lastName"])
	suite.Contains(newest, "joinedAt")
	suite.NotContains(newest, "email")
	suite.NotContains(newest, "id")
}

func TestWaitlistAPISuite(t *testing.T) {
	// Skip integration tests unless explicitly requested
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration tests. Set RUN_INTEGRATION_TESTS=true to run them")
	}

	suite.Run(t, new(WaitlistAPITestSuite))
}
