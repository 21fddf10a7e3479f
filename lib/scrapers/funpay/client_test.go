package funpay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"funpaygo/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func serveFixture(t *testing.T, w http.ResponseWriter, name string) {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	_, err = w.Write(body)
	require.NoError(t, err)
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	cleanup := telemetry.SetupForTesting("test:scrapers/funpay")
	t.Cleanup(cleanup)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{
		BaseUrl:   server.URL,
		GoldenKey: "test-golden-key",
	})
	require.NoError(t, err)
	return client
}

func TestGetLot(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/lots/210/", r.URL.Path)
		serveFixture(t, w, "lot.html")
	}))

	lot, err := client.GetLot(context.Background(), 210)
	require.NoError(t, err)
	require.Equal(t, "Lineage 2 Essence аккаунты", lot.Title)
	require.Len(t, lot.PreviewOffers, 2)
}

func TestGetOffer(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/lots/offer", r.URL.Path)
		require.Equal(t, "33502824", r.URL.Query().Get("id"))
		serveFixture(t, w, "offer.html")
	}))

	offer, err := client.GetOffer(context.Background(), 33502824)
	require.NoError(t, err)
	require.Equal(t, 1111.32, offer.Price)
}

func TestGetUserSendsGoldenKey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/1940412/", r.URL.Path)
		require.Contains(t, r.Header.Get("Cookie"), "golden_key=test-golden-key")
		serveFixture(t, w, "seller.html")
	}))

	profile, err := client.GetUser(context.Background(), 1940412)
	require.NoError(t, err)
	require.True(t, profile.IsSeller())
}

func TestGetOrder(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/GA4NT90M/", r.URL.Path)
		require.Contains(t, r.Header.Get("Cookie"), "golden_key=test-golden-key")
		serveFixture(t, w, "order.html")
	}))

	order, err := client.GetOrder(context.Background(), "GA4NT90M")
	require.NoError(t, err)
	require.Equal(t, float64(1500), order.Price)
}

func TestGetPromoGames(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/games/promoFilter", r.URL.Path)
		require.Equal(t, "XMLHttpRequest", r.Header.Get("x-requested-with"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "aion", r.FormValue("query"))
		serveFixture(t, w, "promo_games.json")
	}))

	games, err := client.GetPromoGames(context.Background(), "aion")
	require.NoError(t, err)
	require.Len(t, games, 2)
}

func TestRefreshSession(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/unknown/", r.URL.Path)
		require.Contains(t, r.Header.Get("Cookie"), "golden_key=test-golden-key")
		// the session id arrives alongside other cookies, each in its own
		// Set-Cookie header
		w.Header().Add("Set-Cookie", "locale=ru; path=/; HttpOnly")
		w.Header().Add("Set-Cookie", "PHPSESSID=sess-one; path=/; HttpOnly")
		w.WriteHeader(http.StatusNotFound)
		serveFixture(t, w, "session.html")
	}))

	session, err := client.RefreshSession(context.Background())
	require.NoError(t, err)
	require.Equal(t, Session{CSRFToken: "fresh-csrf-token", PHPSessionID: "sess-one"}, session)

	// the pair is installed on the client, ensureSession must not refetch
	installed, err := client.ensureSession(context.Background())
	require.NoError(t, err)
	require.Equal(t, session, installed)
}

func TestGetTransactionsPagination(t *testing.T) {
	requests := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/transactions", r.URL.Path)
		require.Equal(t, "XMLHttpRequest", r.Header.Get("x-requested-with"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "1940412", r.FormValue("user_id"))
		require.Equal(t, "order", r.FormValue("filter"))

		requests++
		switch requests {
		case 1:
			require.Empty(t, r.FormValue("continue"))
			serveFixture(t, w, "transactions.html")
		case 2:
			require.Equal(t, "cursor-page-two", r.FormValue("continue"))
			serveFixture(t, w, "transactions_last.html")
		default:
			t.Fatal("feed fetched past its last page")
		}
	}))

	transactions, err := client.GetTransactions(context.Background(), TransactionsRequest{
		UserID: 1940412,
		Pages:  10,
		Type:   TransactionOrder,
	})
	require.NoError(t, err)
	// the second page has no continuation form, the walk must stop there
	require.Len(t, transactions, 4)
	require.Equal(t, 2, requests)
}

func TestGetTransactionsPageCap(t *testing.T) {
	requests := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		serveFixture(t, w, "transactions.html")
	}))

	transactions, err := client.GetTransactions(context.Background(), TransactionsRequest{
		UserID: 1940412,
		Pages:  2,
	})
	require.NoError(t, err)
	// every page advertises a cursor, the page cap is what stops the walk
	require.Len(t, transactions, 6)
	require.Equal(t, 2, requests)
}

func TestGetTransactionsUserNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	_, err := client.GetTransactions(context.Background(), TransactionsRequest{UserID: 42})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetTransactionsInvalidGoldenKey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := client.GetTransactions(context.Background(), TransactionsRequest{UserID: 42})
	require.ErrorIs(t, err, ErrInvalidGoldenKey)
}

func TestGetSellerReviews(t *testing.T) {
	requests := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/reviews", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "5", r.FormValue("filter"))

		requests++
		if requests == 1 {
			serveFixture(t, w, "reviews.html")
		} else {
			serveFixture(t, w, "reviews_last.html")
		}
	}))

	reviews, err := client.GetSellerReviews(context.Background(), ReviewsRequest{
		UserID: 1940412,
		Pages:  10,
		Stars:  5,
	})
	require.NoError(t, err)
	// the last page carries an empty cursor value, which ends the walk
	require.Len(t, reviews, 3)
	require.Equal(t, 2, requests)
}

func TestGetSellerReviewsNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetSellerReviews(context.Background(), ReviewsRequest{UserID: 42})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
