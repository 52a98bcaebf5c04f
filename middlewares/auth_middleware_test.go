package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Jeffrey-mu/weight-loss/config"
	"github.com/Jeffrey-mu/weight-loss/models"
	"github.com/Jeffrey-mu/weight-loss/services"
	"github.com/Jeffrey-mu/weight-loss/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:mw_%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTokens(t *testing.T) *utils.TokenManager {
	t.Helper()
	tm, err := utils.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := newTokens(t)

	r := gin.New()
	r.GET("/protected", AuthRequired(tokens), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})

	token, err := tokens.Issue(7)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusOK && !strings.Contains(w.Body.String(), `"userId":7`) {
				t.Errorf("body = %s, want userId 7", w.Body.String())
			}
		})
	}
}

func TestAdminRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	tokens := newTokens(t)
	users := services.NewUserService(db)
	// Production policy with no overrides: only the persisted role
	// grants access.
	policy := services.NewAdminPolicy(config.AdminOverrides{}, true)

	adminEmail := "admin@b.com"
	userEmail := "user@b.com"
	admin := &models.User{Email: &adminEmail, PasswordHash: "x", Role: models.RoleAdmin}
	plain := &models.User{Email: &userEmail, PasswordHash: "x", Role: models.RoleUser}
	for _, u := range []*models.User{admin, plain} {
		if err := db.Create(u).Error; err != nil {
			t.Fatal(err)
		}
	}

	r := gin.New()
	r.GET("/admin", AuthRequired(tokens), AdminRequired(users, policy), func(c *gin.Context) {
		actor, _ := AdminUser(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID})
	})

	tests := []struct {
		name   string
		userID uint
		want   int
	}{
		{"admin passes", admin.ID, http.StatusOK},
		{"plain user forbidden", plain.ID, http.StatusForbidden},
		{"vanished identity unauthorized", 9999, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tokens.Issue(tt.userID)
			if err != nil {
				t.Fatal(err)
			}

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
