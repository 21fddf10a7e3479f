package funpay

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// offerSaveServer fakes the session and offer form endpoints. Every call to
// /unknown/ mints a new csrf token; /lots/offerSave accepts only the latest
// one and reports the stale-session message for anything older.
type offerSaveServer struct {
	t *testing.T

	refreshes   int
	submissions int
	// tokens minted so far; the last one is the only live one
	minted []string
	// submission outcomes the server forces regardless of the token,
	// consumed in order; "ok", "stale" or "forbidden"
	forced []string

	lastForm map[string]string
}

func (s *offerSaveServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/unknown/":
		s.refreshes++
		token := fmt.Sprintf("csrf-%d", s.refreshes)
		s.minted = append(s.minted, token)
		w.Header().Set("Set-Cookie", fmt.Sprintf("PHPSESSID=sess-%d; path=/", s.refreshes))
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, `<html><body data-app-data='{"csrf-token":%q}'></body></html>`, token)

	case "/lots/offerSave":
		s.submissions++
		require.NoError(s.t, r.ParseMultipartForm(1<<20))
		s.lastForm = map[string]string{}
		for key := range r.MultipartForm.Value {
			s.lastForm[key] = r.FormValue(key)
		}

		outcome := "ok"
		if len(s.forced) > 0 {
			outcome = s.forced[0]
			s.forced = s.forced[1:]
		} else if len(s.minted) == 0 || r.FormValue("csrf_token") != s.minted[len(s.minted)-1] {
			outcome = "stale"
		}

		switch outcome {
		case "forbidden":
			w.WriteHeader(http.StatusForbidden)
		case "stale":
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"msg": "Обновите страницу и повторите попытку."}`)
		default:
			fmt.Fprint(w, `{"done": true}`)
		}

	default:
		s.t.Fatalf("unexpected request to %s", r.URL.Path)
	}
}

func TestSaveOfferFreshClient(t *testing.T) {
	server := &offerSaveServer{t: t}
	client := newTestClient(t, server)

	err := client.SaveOffer(context.Background(), SaveOfferRequest{
		NodeID:    210,
		Active:    true,
		Price:     1111.32,
		SummaryRU: "Топ аккаунт",
	})
	require.NoError(t, err)
	// a client without a session refreshes once up front and submits once
	require.Equal(t, 1, server.refreshes)
	require.Equal(t, 1, server.submissions)

	require.Equal(t, "csrf-1", server.lastForm["csrf_token"])
	require.Equal(t, "", server.lastForm["offer_id"])
	require.Equal(t, "210", server.lastForm["node_id"])
	require.Equal(t, "on", server.lastForm["active"])
	require.Equal(t, "", server.lastForm["deleted"])
	require.Equal(t, "1111.32", server.lastForm["price"])
	require.Equal(t, "Топ аккаунт", server.lastForm["fields[summary][ru]"])
	require.NotEmpty(t, server.lastForm["form_created_at"])
}

func TestSaveOfferStaleSessionRetriesOnce(t *testing.T) {
	server := &offerSaveServer{t: t, forced: []string{"stale"}}
	client := newTestClient(t, server)

	err := client.SaveOffer(context.Background(), SaveOfferRequest{NodeID: 210, Active: true})
	require.NoError(t, err)
	// first submit is rejected as stale, which costs one more refresh and
	// one more submit
	require.Equal(t, 2, server.refreshes)
	require.Equal(t, 2, server.submissions)
	require.Equal(t, "csrf-2", server.lastForm["csrf_token"])
}

func TestSaveOfferStaleAfterRefreshIsFatal(t *testing.T) {
	server := &offerSaveServer{t: t, forced: []string{"stale", "stale"}}
	client := newTestClient(t, server)

	err := client.SaveOffer(context.Background(), SaveOfferRequest{NodeID: 210})
	require.Error(t, err)
	// never more than two submissions and two refreshes
	require.Equal(t, 2, server.refreshes)
	require.Equal(t, 2, server.submissions)
}

func TestSaveOfferInvalidGoldenKey(t *testing.T) {
	server := &offerSaveServer{t: t, forced: []string{"forbidden"}}
	client := newTestClient(t, server)

	err := client.SaveOffer(context.Background(), SaveOfferRequest{NodeID: 210})
	require.ErrorIs(t, err, ErrInvalidGoldenKey)
	// a rejected credential is not a stale session, no retry happens
	require.Equal(t, 1, server.refreshes)
	require.Equal(t, 1, server.submissions)
}

func TestDeleteOffer(t *testing.T) {
	server := &offerSaveServer{t: t}
	client := newTestClient(t, server)

	err := client.DeleteOffer(context.Background(), 33502824, 210)
	require.NoError(t, err)
	require.Equal(t, "33502824", server.lastForm["offer_id"])
	require.Equal(t, "1", server.lastForm["deleted"])
}

func TestEditOfferExtraFields(t *testing.T) {
	server := &offerSaveServer{t: t}
	client := newTestClient(t, server)

	err := client.EditOffer(context.Background(), 33502824, SaveOfferRequest{
		NodeID:   210,
		Active:   true,
		Secrets:  []string{"key-one", "key-two"},
		ImageIDs: []int64{11, 22},
		Fields:   map[string]string{"fields[type]": "Аккаунт"},
	})
	require.NoError(t, err)
	require.Equal(t, "33502824", server.lastForm["offer_id"])
	require.Equal(t, "key-one\nkey-two", server.lastForm["secrets"])
	require.Equal(t, "11,22", server.lastForm["fields[images]"])
	require.Equal(t, "Аккаунт", server.lastForm["fields[type]"])
}

func TestRaiseAllOffers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/lots/raise", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "41", r.FormValue("game_id"))
		require.Equal(t, "210", r.FormValue("node_id"))
		fmt.Fprint(w, `{"msg": "Предложения подняты."}`)
	}))

	err := client.RaiseAllOffers(context.Background(), 41, 210)
	require.NoError(t, err)
}

func TestRaiseAllOffersAlreadyRaised(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"msg": "Подождите 4 часа."}`)
	}))

	err := client.RaiseAllOffers(context.Background(), 41, 210)
	require.ErrorIs(t, err, ErrAlreadyRaised)
}

func TestAddOfferImage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/file/addOfferImage", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "image.jpg", header.Filename)
		fmt.Fprint(w, `{"fileId": 3374426}`)
	}))

	fileID, err := client.AddOfferImage(context.Background(), []byte{0xff, 0xd8, 0xff})
	require.NoError(t, err)
	require.Equal(t, int64(3374426), fileID)
}

func TestUpdateAvatar(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/file/avatar", r.URL.Path)
		fmt.Fprint(w, `{"fileId": 1}`)
	}))

	err := client.UpdateAvatar(context.Background(), []byte{0xff, 0xd8, 0xff})
	require.NoError(t, err)
}

func TestUpdateAvatarInvalidGoldenKey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	err := client.UpdateAvatar(context.Background(), []byte{0xff, 0xd8, 0xff})
	require.ErrorIs(t, err, ErrInvalidGoldenKey)
}
