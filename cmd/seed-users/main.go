package main

import (
	"context"
	"fmt"
	"time"

	"github.com/campushub/portal-backend/internal/config"
	"github.com/campushub/portal-backend/internal/database"
	"github.com/campushub/portal-backend/internal/logger"
	"github.com/campushub/portal-backend/internal/model"
	"github.com/campushub/portal-backend/internal/repository"
	"github.com/campushub/portal-backend/internal/service"
)

const (
	department   = "Computer Science"
	demoPassword = "pass1234"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	noticeRepo := repository.NewNoticeRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)
	authService := service.NewAuthService(cfg, nil)

	hash, err := authService.HashPassword(demoPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash demo password")
	}

	fmt.Println("=== Seeding Demo Portal Data ===")

	// One teacher account.
	empNo := "EMP001"
	teacher := &model.User{
		Username:       "teach1",
		PasswordHash:   hash,
		Role:           model.RoleTeacher,
		Name:           "Priya Raman",
		Department:     department,
		EmployeeNumber: &empNo,
	}
	if err := userRepo.Create(ctx, teacher); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed teacher")
	}
	fmt.Printf("Created teacher %s (id=%d)\n", teacher.Username, teacher.ID)

	// Twenty students.
	for i := 1; i <= 20; i++ {
		stuNo := fmt.Sprintf("CS%03d", i)
		student := &model.User{
			Username:      fmt.Sprintf("stud%d", i),
			PasswordHash:  hash,
			Role:          model.RoleStudent,
			Name:          fmt.Sprintf("Demo Student %d", i),
			Department:    department,
			StudentNumber: &stuNo,
		}
		if err := userRepo.Create(ctx, student); err != nil {
			log.Fatal().Err(err).Int("index", i).Msg("Failed to seed student")
		}
	}
	fmt.Println("Created 20 students (stud1..stud20)")

	// A welcome notice.
	notice := &model.Notice{
		Title:      "Welcome to the new semester",
		Content:    "Classes begin Monday. Check your timetable for room changes.",
		Category:   "general",
		Priority:   model.NoticePriorityNormal,
		AuthorID:   teacher.ID,
		Department: department,
	}
	if err := noticeRepo.Create(ctx, notice); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed notice")
	}

	// A weekly timetable.
	timetable := &model.Timetable{
		Department: department,
		WeekLabel:  "Week 1",
		Slots: []model.TimetableSlot{
			{Day: "Monday", Subject: "Algorithms", StartTime: "09:00", EndTime: "10:30", Room: "A-101", Instructor: "Priya Raman"},
			{Day: "Monday", Subject: "Databases", StartTime: "11:00", EndTime: "12:30", Room: "A-102", Instructor: "J. Okafor"},
			{Day: "Tuesday", Subject: "Operating Systems", StartTime: "09:00", EndTime: "10:30", Room: "B-201", Instructor: "M. Chen"},
			{Day: "Wednesday", Subject: "Networks", StartTime: "14:00", EndTime: "15:30", Room: "B-202", Instructor: "Priya Raman"},
			{Day: "Friday", Subject: "Software Engineering", StartTime: "10:00", EndTime: "11:30", Room: "A-101", Instructor: "J. Okafor"},
		},
	}
	if err := timetableRepo.Replace(ctx, timetable); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed timetable")
	}

	fmt.Println("Seeded notice and timetable")
	fmt.Printf("All demo accounts use password %q\n", demoPassword)
}
