package store

import "github.com/shelfmark/backend/internal/models"

// SampleBooks returns the example records a fresh collection is seeded
// with. Returned as new values each call so callers cannot alias the
// seed data.
func SampleBooks() []models.Book {
	return []models.Book{
		{
			ID:                "1",
			Title:             "The Great Gatsby",
			Author:            "F. Scott Fitzgerald",
			Genre:             "Classic Literature",
			Pages:             180,
			Status:            models.StatusRead,
			Rating:            4,
			Summary:           "A masterpiece of American literature exploring themes of decadence, idealism, and social upheaval in the Jazz Age. The story primarily concerns the mysterious millionaire Jay Gatsby and his obsession with the beautiful Daisy Buchanan. Set in the summer of 1922, the novel is a critique of the American Dream.",
			DateAdded:         "2024-01-15",
			DateRead:          "2024-01-20",
			DateReadTimestamp: "2024-01-20T14:30:00Z",
			CoverColor:        models.CoverColors[0],
			ImageURL:          models.StockImages[0],
		},
		{
			ID:         "2",
			Title:      "Dune",
			Author:     "Frank Herbert",
			Genre:      "Science Fiction",
			Pages:      688,
			Status:     models.StatusToRead,
			DateAdded:  "2024-01-10",
			CoverColor: models.CoverColors[1],
			ImageURL:   models.StockImages[1],
		},
		{
			ID:                "3",
			Title:             "To Kill a Mockingbird",
			Author:            "Harper Lee",
			Genre:             "Classic Literature",
			Pages:             376,
			Status:            models.StatusRead,
			Rating:            5,
			Summary:           "A powerful story about justice and morality set in the Depression-era South. Through the eyes of Scout Finch, we witness her father Atticus defend a Black man falsely accused of assault, while learning profound lessons about prejudice, courage, and human dignity. The novel explores the destruction of innocence and the importance of standing up for what is right.",
			DateAdded:         "2024-01-05",
			DateRead:          "2024-01-12",
			DateReadTimestamp: "2024-01-12T19:45:00Z",
			CoverColor:        models.CoverColors[2],
			ImageURL:          models.StockImages[2],
		},
	}
}
