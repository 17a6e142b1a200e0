// Package presenter turns stored entities into response records.
// Fields that are not stored (href, rating, review counts, image URLs)
// are computed here at read time.
package presenter

import (
	"strconv"
	"strings"
	"time"

	"shop/internal/domain/model"

	"github.com/shopspring/decimal"
)

const (
	// %a %b %d %m %Y %H:%M:%S GMT%z
	ListDateLayout = "Mon Jan 02 01 2006 15:04:05 GMT-0700"
	// %a %b %d %m %Y %H:%M:%S
	BasketDateLayout = "Mon Jan 02 01 2006 15:04:05"
	// %Y-%m-%d %H:%M
	OrderDateLayout = "2006-01-02 15:04"
	SaleDateLayout  = "2006-01-02"
)

type Presenter struct {
	mediaURL    string
	loc         *time.Location
	nestedItems bool
}

func New(mediaURL string, loc *time.Location, nestedItems bool) *Presenter {
	if loc == nil {
		loc = time.UTC
	}
	return &Presenter{mediaURL: mediaURL, loc: loc, nestedItems: nestedItems}
}

func Href(productID int64) string {
	return "/catalog/" + strconv.FormatInt(productID, 10)
}

func CategoryHref(categoryID int64) string {
	return "/catalog/" + strconv.FormatInt(categoryID, 10)
}

// 平均を小数1桁に丸める（0.05は切り上げ）。レビューなしは0
func RatingDecimal(reviews []model.Review) decimal.Decimal {
	if len(reviews) == 0 {
		return decimal.Zero
	}
	var sum int64
	for _, r := range reviews {
		sum += int64(r.Rate)
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(reviews)))).Round(1)
}

func Rating(reviews []model.Review) float64 {
	return RatingDecimal(reviews).InexactFloat64()
}

func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// 持ち主が不明な画像は出さない
func (p *Presenter) ImageURLs(images []model.Image) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		if _, err := img.Owner(); err != nil {
			continue
		}
		urls = append(urls, p.ImageURL(img.File))
	}
	return urls
}

func (p *Presenter) ImageURL(file string) string {
	if file == "" || strings.HasPrefix(file, "http://") || strings.HasPrefix(file, "https://") {
		return file
	}
	return strings.TrimSuffix(p.mediaURL, "/") + "/" + strings.TrimPrefix(file, "/")
}

func (p *Presenter) format(t time.Time, layout string) string {
	return t.In(p.loc).Format(layout)
}

func tagIDs(tags []model.Tag) []string {
	ids := make([]string, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids
}
