package funpay

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// The feed endpoints page through their data with an opaque cursor the server
// embeds in each response. A page without the cursor form, or with an empty
// cursor value, is the last one; the page count caps the walk regardless.

type TransactionsRequest struct {
	UserID int64
	// how many feed pages to fetch at most; values below 1 fetch one
	Pages int
	// empty means all transaction kinds
	Type TransactionType
}

type ReviewsRequest struct {
	UserID int64
	// how many feed pages to fetch at most; values below 1 fetch one
	Pages int
	// 1 through 5 restricts to that rating, 0 means all
	Stars int
}

// GetTransactions walks the account's transactions feed. Requires a golden
// key.
func (c *Client) GetTransactions(ctx context.Context, req TransactionsRequest) ([]Transaction, error) {
	ctx, span := tracer.Start(ctx, "client:GetTransactions")
	defer span.End()

	var transactions []Transaction
	cursor := ""
	for page := 0; page < max(req.Pages, 1); page++ {
		res, err := c.Http.R().
			SetContext(ctx).
			SetHeader("x-requested-with", "XMLHttpRequest").
			SetHeader("Cookie", "golden_key="+c.goldenKey).
			SetMultipartFormData(map[string]string{
				"user_id":  fmt.Sprint(req.UserID),
				"filter":   string(req.Type),
				"continue": cursor,
			}).
			Post("/users/transactions")
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch transactions page")
			return nil, err
		}
		switch res.StatusCode() {
		case http.StatusBadRequest:
			return nil, &NotFoundError{Entity: "user", ID: fmt.Sprint(req.UserID)}
		case http.StatusForbidden:
			return nil, ErrInvalidGoldenKey
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
		if err != nil {
			return nil, &ExtractError{Page: "transactions", Err: err}
		}
		entries, err := extractTransactionEntries(doc.Selection, time.Now())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to extract transactions")
			return nil, err
		}
		transactions = append(transactions, entries...)

		cursor = continuationToken(doc)
		if cursor == "" {
			break
		}
	}

	return transactions, nil
}

// GetSellerReviews walks a seller's reviews feed. A 404 here covers both a
// missing user and a user that sells nothing; the feed endpoint does not
// distinguish the two.
func (c *Client) GetSellerReviews(ctx context.Context, req ReviewsRequest) ([]SellerReview, error) {
	ctx, span := tracer.Start(ctx, "client:GetSellerReviews")
	defer span.End()

	filter := ""
	if req.Stars > 0 {
		filter = fmt.Sprint(req.Stars)
	}

	var reviews []SellerReview
	cursor := ""
	for page := 0; page < max(req.Pages, 1); page++ {
		r := c.Http.R().
			SetContext(ctx).
			SetHeader("x-requested-with", "XMLHttpRequest").
			SetMultipartFormData(map[string]string{
				"user_id":  fmt.Sprint(req.UserID),
				"filter":   filter,
				"continue": cursor,
			})
		if c.goldenKey != "" {
			r.SetHeader("Cookie", "golden_key="+c.goldenKey)
		}
		res, err := r.Post("/users/reviews")
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch reviews page")
			return nil, err
		}
		if res.StatusCode() == http.StatusNotFound {
			return nil, &NotFoundError{Entity: "user", ID: fmt.Sprint(req.UserID)}
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
		if err != nil {
			return nil, &ExtractError{Page: "reviews", Err: err}
		}
		entries, err := extractReviewEntries(doc.Selection, time.Now())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to extract reviews")
			return nil, err
		}
		reviews = append(reviews, entries...)

		cursor = continuationToken(doc)
		if cursor == "" {
			break
		}
	}

	return reviews, nil
}
