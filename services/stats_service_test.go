package services

import (
	"context"
	"testing"
	"time"

	"github.com/Jeffrey-mu/weight-loss/models"
)

func TestTodayStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	ctx := context.Background()

	height := 175.0
	user := seedUser(t, db, "a@b.com", models.RoleUser)
	if err := db.Model(user).Update("height", height).Error; err != nil {
		t.Fatal(err)
	}

	dayStart, _ := dayRange(time.Now())
	morning := dayStart.Add(8 * time.Hour)
	noon := dayStart.Add(12 * time.Hour)
	yesterday := dayStart.Add(-12 * time.Hour)

	// Two weight entries today; the later one should win.
	for _, r := range []models.WeightRecord{
		{UserID: user.ID, Date: morning, Weight: 80.5},
		{UserID: user.ID, Date: noon, Weight: 80},
		{UserID: user.ID, Date: yesterday, Weight: 82},
	} {
		if err := db.Create(&r).Error; err != nil {
			t.Fatal(err)
		}
	}
	for _, r := range []models.DietRecord{
		{UserID: user.ID, Date: morning, Type: models.MealBreakfast, FoodName: "oats", Calories: 320},
		{UserID: user.ID, Date: noon, Type: models.MealLunch, FoodName: "rice", Calories: 500},
		{UserID: user.ID, Date: yesterday, Type: models.MealDinner, FoodName: "pasta", Calories: 700},
	} {
		if err := db.Create(&r).Error; err != nil {
			t.Fatal(err)
		}
	}
	if err := db.Create(&models.ExerciseRecord{
		UserID: user.ID, Date: noon, Type: "running", Duration: 30, Calories: 250,
	}).Error; err != nil {
		t.Fatal(err)
	}

	stats, err := svc.Today(ctx, user.ID)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}

	if stats.Weight == nil || *stats.Weight != 80 {
		t.Errorf("weight = %v, want 80", stats.Weight)
	}
	if stats.TotalIntake != 820 {
		t.Errorf("totalIntake = %v, want 820", stats.TotalIntake)
	}
	if stats.TotalBurned != 250 {
		t.Errorf("totalBurned = %v, want 250", stats.TotalBurned)
	}
	if stats.BMI == nil {
		t.Fatal("bmi missing despite height on file")
	}
	// 80 / 1.75^2
	if *stats.BMI < 26.1 || *stats.BMI > 26.2 {
		t.Errorf("bmi = %v, want ~26.12", *stats.BMI)
	}
}

func TestTodayStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	user := seedUser(t, db, "a@b.com", models.RoleUser)

	stats, err := svc.Today(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if stats.Weight != nil || stats.TotalIntake != 0 || stats.TotalBurned != 0 {
		t.Errorf("empty day stats = %+v", stats)
	}
}
