//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campus-pos/backend/internal/application/usecase/assistant"
	"github.com/campus-pos/backend/internal/application/usecase/auth"
	"github.com/campus-pos/backend/internal/application/usecase/checkout"
	"github.com/campus-pos/backend/internal/application/usecase/product"
	"github.com/campus-pos/backend/internal/application/usecase/report"
	"github.com/campus-pos/backend/internal/application/usecase/user"
	"github.com/campus-pos/backend/internal/infra/server/router"
	"github.com/campus-pos/backend/internal/integration/adapters"
	"github.com/campus-pos/backend/internal/integration/email"
	"github.com/campus-pos/backend/internal/integration/entrypoint/controller"
	"github.com/campus-pos/backend/internal/integration/entrypoint/middleware"
	"github.com/campus-pos/backend/internal/integration/persistence"
	"github.com/campus-pos/backend/internal/integration/persistence/cache"
	"github.com/campus-pos/backend/internal/integration/persistence/model"
	"github.com/campus-pos/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	defaultPIN    = "123456"
	appBaseURL    = "http://localhost:5173"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	resetToken        string
	expiredToken      string
	verificationToken string
	currentUserID     uuid.UUID
	currentProductID  uuid.UUID
	currentItemID     uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("campus_pos", map[string]any{
			"users":             &model.UserModel{},
			"refresh_tokens":    &model.RefreshTokenModel{},
			"pin_reset_tokens":  &model.PinResetTokenModel{},
			"products":          &model.ProductModel{},
			"transactions":      &model.TransactionModel{},
			"transaction_items": &model.TransactionItemModel{},
			"paid_items":        &model.PaidItemModel{},
			"email_queue":       &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a verified user exists with email "([^"]*)"$`, test.aVerifiedUserExistsWithEmail)
	ctx.Given(`^a verified user exists with email "([^"]*)" and PIN "([^"]*)"$`, test.aVerifiedUserExistsWithEmailAndPIN)
	ctx.Given(`^an unverified user exists with email "([^"]*)"$`, test.anUnverifiedUserExistsWithEmail)
	ctx.Given(`^an admin user exists with email "([^"]*)"$`, test.anAdminUserExistsWithEmail)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Token setup steps
	ctx.Given(`^a PIN reset token exists for "([^"]*)"$`, test.aPINResetTokenExistsFor)
	ctx.Given(`^an expired PIN reset token exists$`, test.anExpiredPINResetTokenExists)
	ctx.Given(`^a verification token exists for "([^"]*)"$`, test.aVerificationTokenExistsFor)

	// Catalog setup steps
	ctx.Given(`^a product exists with name "([^"]*)" barcode "([^"]*)" price "([^"]*)" and stock (\d+)$`, test.aProductExists)

	// Settlement setup steps
	ctx.Given(`^a pending pay later item exists for "([^"]*)" with name "([^"]*)" and price "([^"]*)"$`, test.aPendingPayLaterItemExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.verificationToken = ""
	t.currentUserID = uuid.Nil
	t.currentProductID = uuid.Nil
	t.currentItemID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			productRepo := persistence.NewProductRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			reportRepo := persistence.NewReportRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)
			productCache := cache.NewProductCache(mock.NewRedis())

			// Create adapters/services
			pinService := adapters.NewPINService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			resetTokenService := adapters.NewPINResetTokenService(tokenRepo)
			emailService := email.NewService(emailQueueRepo)

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, pinService, tokenService, emailService, appBaseURL)
			verifyEmailUseCase := auth.NewVerifyEmailUseCase(userRepo, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, pinService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPINUseCase := auth.NewForgotPINUseCase(userRepo, resetTokenService, emailService, appBaseURL)
			resetPINUseCase := auth.NewResetPINUseCase(userRepo, pinService, resetTokenService, defaultPIN)

			// Create user use cases
			getProfileUseCase := user.NewGetProfileUseCase(userRepo)
			updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo, pinService)
			listUsersUseCase := user.NewListUsersUseCase(userRepo)
			deleteUserUseCase := user.NewDeleteUserUseCase(userRepo)

			// Create product use cases
			listProductsUseCase := product.NewListProductsUseCase(productRepo)
			getProductUseCase := product.NewGetProductUseCase(productRepo)
			getByBarcodeUseCase := product.NewGetByBarcodeUseCase(productRepo, productCache)
			createProductUseCase := product.NewCreateProductUseCase(productRepo)
			updateProductUseCase := product.NewUpdateProductUseCase(productRepo, productCache)
			deleteProductUseCase := product.NewDeleteProductUseCase(productRepo, productCache)
			decrementStockUseCase := product.NewDecrementStockUseCase(productRepo, productCache)

			// Create checkout use cases
			createTransactionUseCase := checkout.NewCreateTransactionUseCase(transactionRepo, productRepo, productCache)
			listTransactionsUseCase := checkout.NewListTransactionsUseCase(transactionRepo)
			confirmPayLaterUseCase := checkout.NewConfirmPayLaterUseCase(transactionRepo)

			// Create report and assistant use cases
			dailySalesUseCase := report.NewDailySalesUseCase(reportRepo, time.UTC)
			assistantService := adapters.NewGeminiAssistant("", productRepo, dailySalesUseCase)
			askUseCase := assistant.NewAskUseCase(assistantService)

			// Create controllers
			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return true },
			)

			authController := controller.NewAuthController(
				registerUseCase,
				verifyEmailUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				forgotPINUseCase,
				resetPINUseCase,
			)

			userController := controller.NewUserController(
				getProfileUseCase,
				updateProfileUseCase,
				listUsersUseCase,
				deleteUserUseCase,
			)

			productController := controller.NewProductController(
				listProductsUseCase,
				getProductUseCase,
				getByBarcodeUseCase,
				createProductUseCase,
				updateProductUseCase,
				deleteProductUseCase,
				decrementStockUseCase,
			)

			transactionController := controller.NewTransactionController(
				createTransactionUseCase,
				listTransactionsUseCase,
				confirmPayLaterUseCase,
			)

			reportController := controller.NewReportController(dailySalesUseCase, time.UTC)
			assistantController := controller.NewAssistantController(askUseCase)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				userController,
				productController,
				transactionController,
				reportController,
				assistantController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aVerifiedUserExistsWithEmail(email string) error {
	return t.createUser(email, defaultPIN, false, true)
}

func (t *testContext) aVerifiedUserExistsWithEmailAndPIN(email, pin string) error {
	return t.createUser(email, pin, false, true)
}

func (t *testContext) anUnverifiedUserExistsWithEmail(email string) error {
	return t.createUser(email, defaultPIN, false, false)
}

func (t *testContext) anAdminUserExistsWithEmail(email string) error {
	return t.createUser(email, defaultPIN, true, true)
}

func (t *testContext) createUser(email, pin string, isAdmin, isVerified bool) error {
	var existing model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&existing).Error; err == nil {
		t.currentUserID = existing.ID
		return nil
	}

	userID := uuid.New()
	t.currentUserID = userID

	userModel := &model.UserModel{
		ID:         userID,
		FirstName:  "Test",
		LastName:   "User",
		Email:      email,
		PinHash:    hashPIN(pin),
		IsAdmin:    isAdmin,
		IsVerified: isVerified,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	return t.db.DbConn.Create(userModel).Error
}

func hashPIN(pin string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash PIN: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs ensures a verified user with the given email exists and
// issues tokens for them. Admin status is read from the stored row, so a
// preceding "an admin user exists" step makes this an admin session.
func (t *testContext) iAmLoggedInAs(email string) error {
	if err := t.createUser(email, defaultPIN, false, true); err != nil {
		return err
	}

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	t.currentUserID = userModel.ID

	return t.issueTokens(userModel.ID, userModel.Email, userModel.IsAdmin)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("id = ?", t.currentUserID).First(&userModel).Error; err != nil {
		return fmt.Errorf("no current user to log in: %w", err)
	}
	return t.issueTokens(userModel.ID, userModel.Email, userModel.IsAdmin)
}

func (t *testContext) issueTokens(userID uuid.UUID, email string, isAdmin bool) error {
	now := time.Now().UTC()

	accessToken, err := signToken(userID, email, isAdmin, "access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessToken

	refreshToken, err := signToken(userID, email, isAdmin, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshToken

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      userID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func signToken(userID uuid.UUID, email string, isAdmin bool, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"is_admin":   isAdmin,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "campus-pos",
		"sub":        userID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aPINResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PinResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    userModel.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) anExpiredPINResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PinResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) aVerificationTokenExistsFor(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	token, err := signToken(userModel.ID, email, false, "verification", time.Now().UTC(), 24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}
	t.verificationToken = token
	return nil
}

func (t *testContext) aProductExists(name, barcode, price string, stock int) error {
	priceValue, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid price '%s': %w", price, err)
	}

	productID := uuid.New()
	t.currentProductID = productID

	now := time.Now().UTC()
	productModel := &model.ProductModel{
		ID:        productID,
		Name:      name,
		Price:     priceValue,
		Quantity:  stock,
		Barcode:   barcode,
		Category:  "drinks",
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(productModel).Error
}

// aPendingPayLaterItemExists seeds a pay-later transaction with a single
// unsettled line item for the given user.
func (t *testContext) aPendingPayLaterItemExists(email, name, price string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	priceValue, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid price '%s': %w", price, err)
	}

	now := time.Now().UTC()
	transactionID := uuid.New()
	transactionModel := &model.TransactionModel{
		ID:              transactionID,
		UserID:          userModel.ID,
		ReceiptNumber:   fmt.Sprintf("RCPT-%s", uuid.New().String()[:8]),
		PaymentMethod:   "Pay Later",
		TransactionDate: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := t.db.DbConn.Create(transactionModel).Error; err != nil {
		return err
	}

	itemID := uuid.New()
	t.currentItemID = itemID
	itemModel := &model.TransactionItemModel{
		ID:            itemID,
		TransactionID: transactionID,
		Name:          name,
		Price:         priceValue,
		Quantity:      1,
		TotalPrice:    priceValue,
		PaymentStatus: "Pay Later",
	}

	return t.db.DbConn.Create(itemModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{verification_token}}", t.verificationToken)
	content = strings.ReplaceAll(content, "{{product_id}}", t.currentProductID.String())
	content = strings.ReplaceAll(content, "{{item_id}}", t.currentItemID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// A response carrying a barcode is a product; remember its id so
		// follow-up steps can reference {{product_id}}.
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				if _, hasBarcode := responseBody["barcode"]; hasBarcode {
					t.currentProductID = id
				}
			}
		}

		// Capture the first line item id from a checkout response so
		// settlement steps can reference {{item_id}}.
		if items, ok := responseBody["items"].([]any); ok && len(items) > 0 {
			if item, ok := items[0].(map[string]any); ok {
				if idStr, ok := item["id"].(string); ok {
					if id, err := uuid.Parse(idStr); err == nil {
						t.currentItemID = id
					}
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
