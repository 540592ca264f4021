package models

import "math/rand/v2"

// CoverColors is the fixed palette a new record's cover token is picked
// from. The tokens are style identifiers rendered by the UI; the backend
// treats them as opaque.
var CoverColors = []string{
	"bg-gradient-to-br from-blue-500 to-blue-600",
	"bg-gradient-to-br from-purple-500 to-purple-600",
	"bg-gradient-to-br from-green-500 to-green-600",
	"bg-gradient-to-br from-orange-500 to-orange-600",
	"bg-gradient-to-br from-red-500 to-red-600",
	"bg-gradient-to-br from-teal-500 to-teal-600",
	"bg-gradient-to-br from-pink-500 to-pink-600",
	"bg-gradient-to-br from-indigo-500 to-indigo-600",
}

// StockImages is the fixed pool of fallback cover images used when a
// record is created without an explicit image.
var StockImages = []string{
	"https://images.pexels.com/photos/159711/books-bookstore-book-reading-159711.jpeg?auto=compress&cs=tinysrgb&w=400",
	"https://images.pexels.com/photos/1029141/pexels-photo-1029141.jpeg?auto=compress&cs=tinysrgb&w=400",
	"https://images.pexels.com/photos/46274/pexels-photo-46274.jpeg?auto=compress&cs=tinysrgb&w=400",
	"https://images.pexels.com/photos/1370295/pexels-photo-1370295.jpeg?auto=compress&cs=tinysrgb&w=400",
	"https://images.pexels.com/photos/694740/pexels-photo-694740.jpeg?auto=compress&cs=tinysrgb&w=400",
	"https://images.pexels.com/photos/1261728/pexels-photo-1261728.jpeg?auto=compress&cs=tinysrgb&w=400",
	"https://images.pexels.com/photos/1319854/pexels-photo-1319854.jpeg?auto=compress&cs=tinysrgb&w=400",
	"https://images.pexels.com/photos/1130980/pexels-photo-1130980.jpeg?auto=compress&cs=tinysrgb&w=400",
}

// RandomCoverColor picks a palette token at random.
func RandomCoverColor() string {
	return CoverColors[rand.IntN(len(CoverColors))]
}

// RandomStockImage picks a fallback cover image at random.
func RandomStockImage() string {
	return StockImages[rand.IntN(len(StockImages))]
}
