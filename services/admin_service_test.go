package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Jeffrey-mu/weight-loss/models"
)

func seedUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{Email: &email, PasswordHash: "hash", Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedRecords(t *testing.T, db *gorm.DB, userID uint) {
	t.Helper()
	now := time.Now()
	if err := db.Create(&models.WeightRecord{UserID: userID, Date: now, Weight: 80}).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&models.DietRecord{UserID: userID, Date: now, Type: models.MealLunch, FoodName: "rice", Calories: 300}).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&models.ExerciseRecord{UserID: userID, Date: now, Type: "running", Duration: 30, Calories: 250}).Error; err != nil {
		t.Fatal(err)
	}
}

func TestUpdateRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	ctx := context.Background()

	admin := seedUser(t, db, "admin@b.com", models.RoleAdmin)
	target := seedUser(t, db, "user@b.com", models.RoleUser)

	if err := svc.UpdateRole(ctx, admin.ID, target.ID, models.RoleAdmin); err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	var reloaded models.User
	if err := db.First(&reloaded, target.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", reloaded.Role)
	}

	var ve *ValidationError
	if err := svc.UpdateRole(ctx, admin.ID, admin.ID, models.RoleUser); !errors.As(err, &ve) {
		t.Errorf("self role change = %v, want ValidationError", err)
	}
	if err := svc.UpdateRole(ctx, admin.ID, target.ID, "superuser"); !errors.As(err, &ve) {
		t.Errorf("invalid role = %v, want ValidationError", err)
	}
	if err := svc.UpdateRole(ctx, admin.ID, 9999, models.RoleAdmin); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing target = %v, want ErrNotFound", err)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	ctx := context.Background()

	admin := seedUser(t, db, "admin@b.com", models.RoleAdmin)
	victim := seedUser(t, db, "victim@b.com", models.RoleUser)
	bystander := seedUser(t, db, "bystander@b.com", models.RoleUser)
	seedRecords(t, db, victim.ID)
	seedRecords(t, db, bystander.ID)

	if err := svc.DeleteUser(ctx, admin.ID, victim.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if err := db.First(&models.User{}, victim.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("victim still present: %v", err)
	}

	for _, model := range []any{&models.WeightRecord{}, &models.DietRecord{}, &models.ExerciseRecord{}} {
		var orphans int64
		if err := db.Model(model).Where("user_id = ?", victim.ID).Count(&orphans).Error; err != nil {
			t.Fatal(err)
		}
		if orphans != 0 {
			t.Errorf("%T: %d orphaned records", model, orphans)
		}

		var kept int64
		if err := db.Model(model).Where("user_id = ?", bystander.ID).Count(&kept).Error; err != nil {
			t.Fatal(err)
		}
		if kept != 1 {
			t.Errorf("%T: bystander records = %d, want 1", model, kept)
		}
	}
}

func TestDeleteUserGuards(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	ctx := context.Background()

	admin := seedUser(t, db, "admin@b.com", models.RoleAdmin)

	var ve *ValidationError
	if err := svc.DeleteUser(ctx, admin.ID, admin.ID); !errors.As(err, &ve) {
		t.Errorf("self delete = %v, want ValidationError", err)
	}
	if err := svc.DeleteUser(ctx, admin.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing target = %v, want ErrNotFound", err)
	}
}

func TestListUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@b.com", models.RoleUser)
	seedUser(t, db, "bob@b.com", models.RoleUser)
	seedRecords(t, db, alice.ID)

	all, err := svc.ListUsers(ctx, "")
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListUsers returned %d users, want 2", len(all))
	}

	filtered, err := svc.ListUsers(ctx, "alice")
	if err != nil {
		t.Fatalf("ListUsers(q): %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != alice.ID {
		t.Fatalf("ListUsers(q) = %+v, want only alice", filtered)
	}
	want := RecordCounts{Weight: 1, Diet: 1, Exercise: 1}
	if filtered[0].Records != want {
		t.Errorf("alice record counts = %+v, want %+v", filtered[0].Records, want)
	}
}

func TestOverview(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	user := seedUser(t, db, "a@b.com", models.RoleUser)
	seedRecords(t, db, user.ID)

	o, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if o.UserCount != 1 || o.RecordCount.Weight != 1 || o.RecordCount.Diet != 1 || o.RecordCount.Exercise != 1 {
		t.Errorf("Overview = %+v", o)
	}
}
