package storage

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adhikariaashish/gemini-blog/internal/models"
)

// SeedPosts returns the starter content a fresh store is initialized
// with, so the landing page is never empty.
func SeedPosts() []*models.Post {
	now := time.Now()
	return []*models.Post{
		{
			ID:    "1",
			Title: "The Benefits of Meditation in Modern Life",
			Content: "Meditation has become increasingly important in our fast-paced world. " +
				"This ancient practice offers numerous benefits for both mental and physical health. " +
				"Regular meditation can reduce stress, improve focus, enhance emotional well-being, and even boost immune function.\n\n" +
				"Starting a meditation practice doesn't require any special equipment or extensive training. " +
				"Even just 5-10 minutes a day can make a significant difference in your overall quality of life.\n\n" +
				"Some simple techniques to get started include:\n- Focused breathing exercises\n- Body scan meditation\n" +
				"- Mindfulness of daily activities\n- Loving-kindness meditation\n\n" +
				"The key is consistency rather than duration. Start small and gradually build your practice over time.",
			Author:      "Sarah Johnson",
			PublishedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:    "2",
			Title: "AI and the Future of Creative Writing",
			Content: "Artificial Intelligence is revolutionizing the way we approach creative writing. " +
				"From generating ideas to assisting with grammar and style, AI tools are becoming indispensable companions for writers.\n\n" +
				"However, this doesn't mean AI will replace human creativity. Instead, it serves as a powerful tool that can:\n" +
				"- Help overcome writer's block\n- Suggest alternative phrasings\n- Generate creative prompts\n" +
				"- Assist with research and fact-checking\n\n" +
				"The future of writing lies in the collaboration between human creativity and AI assistance, " +
				"creating a new era of enhanced storytelling and communication.",
			Author:      "Tech Enthusiast",
			PublishedAt: now.Add(-5 * time.Hour),
		},
		{
			ID:    "3",
			Title: "Sustainable Living: Small Changes, Big Impact",
			Content: "Living sustainably doesn't require dramatic lifestyle changes. " +
				"Small, consistent actions can create significant positive environmental impact.\n\n" +
				"Simple steps you can take today:\n- Reduce single-use plastics\n- Choose local and seasonal produce\n" +
				"- Use energy-efficient appliances\n- Practice water conservation\n- Support eco-friendly businesses\n\n" +
				"Every small action contributes to a larger movement toward environmental responsibility. " +
				"Together, we can create a more sustainable future for generations to come.",
			Author:      "Green Living Guide",
			PublishedAt: now.Add(-8 * time.Hour),
		},
	}
}

// buildPost validates and normalizes the fields of a new post.
func buildPost(title, content, author string) (*models.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &models.ValidationError{Field: "title"}
	}
	if strings.TrimSpace(content) == "" {
		return nil, &models.ValidationError{Field: "content"}
	}

	author = strings.TrimSpace(author)
	if author == "" {
		author = "Anonymous"
	}

	return &models.Post{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(title),
		Content:     strings.TrimSpace(content),
		Author:      author,
		PublishedAt: time.Now(),
	}, nil
}

// sortNewestFirst orders posts descending by publish time, keeping
// insertion order for equal timestamps.
func sortNewestFirst(posts []*models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
}
