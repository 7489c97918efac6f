package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/dinakaran-k/portfolio-api/adapters/persistence"
	"github.com/dinakaran-k/portfolio-api/internal/domain/post"
	"github.com/dinakaran-k/portfolio-api/internal/domain/profile"
	"github.com/dinakaran-k/portfolio-api/internal/domain/project"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

func main() {
	fmt.Println("seeding portfolio content...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()
	seedLogger := logger.NewZapLogger("development")

	for _, table := range []string{"profiles", "projects", "posts"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("cannot clear %s: %v", table, err)
		}
	}

	profileRepo := persistence.NewPostgresProfileRepo(pool, seedLogger)
	if err := profileRepo.Upsert(ctx, ownerProfile()); err != nil {
		log.Fatalf("cannot seed profile: %v", err)
	}

	projectRepo := persistence.NewPostgresProjectRepo(pool, seedLogger)
	for _, p := range freelanceProjects() {
		if err := projectRepo.Save(ctx, p); err != nil {
			log.Fatalf("cannot seed project %q: %v", p.Title, err)
		}
	}

	postRepo := persistence.NewPostgresPostRepo(pool, seedLogger)
	for _, p := range blogPosts() {
		if err := postRepo.Save(ctx, p); err != nil {
			log.Fatalf("cannot seed post %q: %v", p.Slug, err)
		}
	}

	fmt.Println("seed completed.")
}

func ownerProfile() *profile.Profile {
	return &profile.Profile{
		ID:             uuid.New(),
		Name:           "Dinakaran Kommunuri",
		Headline:       "Freelancer | Open to New Opportunities",
		Location:       "Andhra Pradesh, India",
		Email:          "dinakarankommunuri@gmail.com",
		Phone:          "+91 80964 75183",
		LinkedinURL:    "https://linkedin.com/in/dinakarankommunuri",
		GithubUsername: "Dinakaran-k",
		Summary: "Android Engineer with 4+ years building production-grade mobile apps using Kotlin and Flutter, " +
			"with strong focus on performance, stability, and scalable architecture.",
		Education: []profile.Education{
			{
				Institution: "Vel Tech Rangarajan Dr. Sagunthala R&D Institute of Science & Technology, Chennai",
				Degree:      "B.Tech in Electronics and Communication Engineering",
				Score:       "CGPA: 8.25",
				StartDate:   "July 2017",
				EndDate:     "June 2021",
			},
		},
		Experiences: []profile.Experience{
			{
				Role:      "Android Engineer (Engineer - SE)",
				Company:   "Innominds Software Pvt Ltd",
				StartDate: "May 2025",
				EndDate:   "Present",
				Achievements: []string{
					"Leading Android feature development from design to production release.",
					"Improving playback performance and reducing network usage in multimedia workflows.",
					"Owning crash analysis and production stability improvements.",
				},
			},
			{
				Role:      "Android Developer (Mobile App Engineer)",
				Company:   "Hexaware Technologies",
				StartDate: "Aug 2021",
				EndDate:   "Nov 2024",
				Achievements: []string{
					"Migrated Xamarin features to native Android Kotlin with performance gains.",
					"Reduced crash rates by about 30% with leak fixes and error handling.",
					"Optimized API calls and caching, reducing latency by around 25%.",
				},
			},
		},
		Skills: map[string][]string{
			"Languages":          {"Kotlin", "Java", "Dart", "C#"},
			"Mobile Development": {"Native Android", "Flutter", "Jetpack Compose", "Material Design", "XML"},
			"Architecture":       {"MVVM", "Clean Architecture", "MVI", "MVP"},
			"Networking":         {"Retrofit", "OkHttp", "REST APIs", "GraphQL", "WebSockets", "Dio"},
			"Data Storage":       {"Room", "SQLite", "DataStore", "Hive"},
			"Tools & Quality":    {"Android Studio", "Git", "SonarQube", "Firebase Crashlytics", "New Relic"},
		},
		OpenToWork: true,
	}
}

func freelanceProjects() []*project.Project {
	return []*project.Project{
		{
			ID:     uuid.New(),
			Title:  "Turito - Live Learning App",
			Source: project.SourceFreelance,
			Description: "Modernized Android learning app with Jetpack Compose, MVVM, " +
				"and improved maintainability/performance.",
			Technologies: []string{"Kotlin", "Jetpack Compose", "MVVM", "Hilt", "Retrofit", "Firebase Crashlytics"},
			PlayStoreURL: "https://play.google.com/store/search?q=turito&c=apps",
			Featured:     true,
		},
		{
			ID:     uuid.New(),
			Title:  "Ascott Star Rewards App",
			Source: project.SourceFreelance,
			Description: "Contributed to migration from Xamarin to native Android and implemented " +
				"booking/loyalty workflows.",
			Technologies: []string{"Kotlin", "Jetpack Compose", "MVVM", "Hilt", "Room", "Retrofit"},
			Featured:     false,
		},
	}
}

func blogPosts() []*post.Post {
	return []*post.Post{
		{
			ID:      uuid.New(),
			Title:   "Migrating Xamarin Screens to Jetpack Compose",
			Slug:    "migrating-xamarin-to-compose",
			Excerpt: "Lessons from moving legacy Xamarin features to native Kotlin with Compose.",
			Content: "A practical walkthrough of the migration strategy, from interop shims to " +
				"full Compose rewrites, and the crash-rate wins along the way.",
			Published: true,
			Tags:      []string{"android", "kotlin", "jetpack-compose"},
		},
		{
			ID:      uuid.New(),
			Title:   "Cutting API Latency in Mobile Apps",
			Slug:    "cutting-api-latency",
			Excerpt: "How request batching and caching shaved a quarter off our response times.",
			Content: "Notes on profiling Retrofit call sites, introducing OkHttp caching, and " +
				"measuring the result in production.",
			Published: true,
			Tags:      []string{"android", "networking"},
		},
	}
}
