package main

import (
	"time"

	"github.com/murikinatisankumar/blogspace/pkg/author"
	"github.com/murikinatisankumar/blogspace/pkg/feed"
	"github.com/murikinatisankumar/blogspace/pkg/markup"
	"github.com/murikinatisankumar/blogspace/pkg/notification"
)

// Seed fills the stores with the starter content every fresh instance shows.
func Seed(feedRepo *feed.FeedMemoryRepository, authorRepo *author.AuthorMemoryRepository, notificationRepo *notification.NotificationMemoryRepository) {
	now := time.Now().UTC()

	authors := []*author.Author{
		{ID: "a1", Name: "Sarah Chen", Bio: "Full-stack developer writing about the modern web.", Followers: 1240, Following: 89, Posts: 42},
		{ID: "a2", Name: "Alex Rodriguez", Bio: "Frontend engineer. React, design systems, performance.", Followers: 890, Following: 134, Posts: 28},
		{ID: "a3", Name: "Emma Thompson", Bio: "Writing about clean code and software craft.", Followers: 2100, Following: 56, Posts: 67},
	}
	for _, a := range authors {
		authorRepo.AddAuthor(a) //nolint:errcheck
	}

	posts := []*feed.Post{
		{
			ID:      "1",
			Title:   "The Future of Web Development: Trends to Watch",
			Excerpt: "Exploring the latest trends and technologies shaping the future of web development, from AI integration to new frameworks.",
			Body: "Web development is constantly evolving, and this year promises exciting new trends.\n\n" +
				"## The Rise of AI-Assisted Development\n\n" +
				"Tools that generate and review code are changing daily workflows.\n\n" +
				"- Code generation\n- Automated testing\n- Smarter refactoring",
			Category:      "Technology",
			Tags:          []string{"Web Development", "Technology", "AI"},
			Author:        feed.Author{Username: "sarahchen", Name: "Sarah Chen", ID: "a1"},
			PublishedAt:   now.Add(-26 * time.Hour),
			Likes:         124,
			TrendingScore: 95,
		},
		{
			ID:            "2",
			Title:         "Building Scalable React Applications: Best Practices",
			Excerpt:       "Learn how to structure and optimize React applications for scale, performance, and maintainability.",
			Body:          "Scaling a React codebase is mostly about boundaries.\n\n## Component Architecture\n\nKeep state close to where it is used.",
			Category:      "Programming",
			Tags:          []string{"React", "JavaScript", "Best Practices"},
			Author:        feed.Author{Username: "alexrod", Name: "Alex Rodriguez", ID: "a2"},
			PublishedAt:   now.Add(-2 * 24 * time.Hour),
			Likes:         89,
			TrendingScore: 88,
		},
		{
			ID:            "3",
			Title:         "The Art of Clean Code: Writing Maintainable Software",
			Excerpt:       "Principles and practices for writing clean, readable code that stands the test of time.",
			Body:          "Readable code is a courtesy to the next reader.\n\n- Small functions\n- Honest names\n- No clever tricks",
			Category:      "Programming",
			Tags:          []string{"Clean Code", "Software Engineering"},
			Author:        feed.Author{Username: "emmathompson", Name: "Emma Thompson", ID: "a3"},
			PublishedAt:   now.Add(-4 * 24 * time.Hour),
			Likes:         156,
			TrendingScore: 82,
		},
	}
	for _, p := range posts {
		if p.ReadTime == 0 {
			p.ReadTime = markup.ReadingTime(p.Body)
		}
		if p.Comments == nil {
			p.Comments = make([]*feed.Comment, 0)
		}
		feedRepo.AddPost(p) //nolint:errcheck
	}

	notifications := []*notification.Notification{
		{ID: "n1", Kind: notification.KindLike, Actor: notification.Actor{Username: "alexrod", Name: "Alex Rodriguez", ID: "a2"}, TargetPost: "1", CreatedAt: now.Add(-30 * time.Minute)},
		{ID: "n2", Kind: notification.KindComment, Actor: notification.Actor{Username: "emmathompson", Name: "Emma Thompson", ID: "a3"}, TargetPost: "1", Snippet: "Great overview, thanks for writing this up.", CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "n3", Kind: notification.KindFollow, Actor: notification.Actor{Username: "sarahchen", Name: "Sarah Chen", ID: "a1"}, CreatedAt: now.Add(-2 * 24 * time.Hour)},
		{ID: "n4", Kind: notification.KindMention, Actor: notification.Actor{Username: "alexrod", Name: "Alex Rodriguez", ID: "a2"}, TargetPost: "2", Snippet: "As @you pointed out in the scaling thread...", CreatedAt: now.Add(-8 * 24 * time.Hour), IsRead: true},
	}
	for _, n := range notifications {
		notificationRepo.AddNotification(n) //nolint:errcheck
	}
}
