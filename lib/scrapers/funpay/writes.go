package funpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
)

// SaveOfferRequest covers the whole offer form: creating, editing and
// deleting an offer all post the same form, distinguished by OfferID and
// Deleted.
type SaveOfferRequest struct {
	// 0 when creating a new offer
	OfferID int64
	// the lot the offer belongs to
	NodeID  int64
	Deleted bool
	Active  bool
	// auto-issued items, one per line on the form
	AutoDelivery bool
	Secrets      []string
	// ids previously returned by AddOfferImage
	ImageIDs []int64
	Price    float64
	Amount   int

	SummaryRU        string
	SummaryEN        string
	DescriptionRU    string
	DescriptionEN    string
	PaymentMessageRU string
	PaymentMessageEN string

	// lot-specific form fields, sent through verbatim
	Fields map[string]string
}

// SaveOffer submits the offer form. The endpoint needs a live csrf token +
// session id pair; when the server reports the pair stale, the client
// refreshes it and resubmits once.
func (c *Client) SaveOffer(ctx context.Context, req SaveOfferRequest) error {
	ctx, span := tracer.Start(ctx, "client:SaveOffer")
	defer span.End()

	session, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	err = c.submitOffer(ctx, session, req)
	if !errors.Is(err, errStaleSession) {
		return err
	}

	session, err = c.RefreshSession(ctx)
	if err != nil {
		return err
	}
	err = c.submitOffer(ctx, session, req)
	if errors.Is(err, errStaleSession) {
		span.SetStatus(codes.Error, "session stale right after refresh")
		return fmt.Errorf("offer save rejected with a fresh session: %w", err)
	}
	return err
}

// CreateOffer posts a new offer into the lot named by req.NodeID.
func (c *Client) CreateOffer(ctx context.Context, req SaveOfferRequest) error {
	req.OfferID = 0
	req.Deleted = false
	return c.SaveOffer(ctx, req)
}

// EditOffer resubmits the form for an existing offer.
func (c *Client) EditOffer(ctx context.Context, offerID int64, req SaveOfferRequest) error {
	req.OfferID = offerID
	req.Deleted = false
	return c.SaveOffer(ctx, req)
}

// DeleteOffer removes an existing offer.
func (c *Client) DeleteOffer(ctx context.Context, offerID, nodeID int64) error {
	return c.SaveOffer(ctx, SaveOfferRequest{
		OfferID: offerID,
		NodeID:  nodeID,
		Deleted: true,
	})
}

func (c *Client) submitOffer(ctx context.Context, session Session, req SaveOfferRequest) error {
	form := map[string]string{
		"csrf_token":              session.CSRFToken,
		"offer_id":                "",
		"node_id":                 strconv.FormatInt(req.NodeID, 10),
		"deleted":                 formFlag(req.Deleted, "1"),
		"auto_delivery":           formFlag(req.AutoDelivery, "on"),
		"active":                  formFlag(req.Active, "on"),
		"secrets":                 strings.Join(req.Secrets, "\n"),
		"fields[images]":          joinIDs(req.ImageIDs),
		"price":                   "",
		"amount":                  "",
		"form_created_at":         strconv.FormatInt(time.Now().UnixMilli(), 10),
		"fields[summary][ru]":     req.SummaryRU,
		"fields[summary][en]":     req.SummaryEN,
		"fields[desc][ru]":        req.DescriptionRU,
		"fields[desc][en]":        req.DescriptionEN,
		"fields[payment_msg][ru]": req.PaymentMessageRU,
		"fields[payment_msg][en]": req.PaymentMessageEN,
	}
	if req.OfferID != 0 {
		form["offer_id"] = strconv.FormatInt(req.OfferID, 10)
	}
	if req.Price != 0 {
		form["price"] = strconv.FormatFloat(req.Price, 'f', -1, 64)
	}
	if req.Amount != 0 {
		form["amount"] = strconv.Itoa(req.Amount)
	}
	for key, value := range req.Fields {
		form[key] = value
	}

	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("Cookie", c.authCookie(session)).
		SetHeader("x-requested-with", "XMLHttpRequest").
		SetMultipartFormData(form).
		Post("/lots/offerSave")
	if err != nil {
		return err
	}

	if res.StatusCode() == http.StatusForbidden {
		return ErrInvalidGoldenKey
	}

	var payload struct {
		Done   bool            `json:"done"`
		Msg    string          `json:"msg"`
		Error  json.RawMessage `json:"error"`
		Errors json.RawMessage `json:"errors"`
	}
	body := res.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return extractErr("offer save", "response body: %v", err)
	}

	if res.StatusCode() == http.StatusBadRequest &&
		payload.Msg == "Обновите страницу и повторите попытку." {
		return errStaleSession
	}
	if !payload.Done {
		return fmt.Errorf("offer save rejected: %s %s", payload.Error, payload.Errors)
	}
	return nil
}

// RaiseAllOffers bumps every offer of the account in the given lot back to
// the top of the listing. The server throttles this; an early repeat yields
// ErrAlreadyRaised.
func (c *Client) RaiseAllOffers(ctx context.Context, gameID, lotID int64) error {
	ctx, span := tracer.Start(ctx, "client:RaiseAllOffers")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("Cookie", "golden_key="+c.goldenKey).
		SetHeader("x-requested-with", "XMLHttpRequest").
		SetMultipartFormData(map[string]string{
			"game_id": strconv.FormatInt(gameID, 10),
			"node_id": strconv.FormatInt(lotID, 10),
		}).
		Post("/lots/raise")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to post raise")
		return err
	}
	if res.StatusCode() == http.StatusForbidden {
		return ErrInvalidGoldenKey
	}

	var payload struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return extractErr("raise", "response body: %v", err)
	}
	if strings.HasPrefix(payload.Msg, "Подождите") {
		return ErrAlreadyRaised
	}
	return nil
}

// AddOfferImage uploads an image for later use in an offer form and yields
// the id to put into SaveOfferRequest.ImageIDs.
func (c *Client) AddOfferImage(ctx context.Context, image []byte) (int64, error) {
	return c.uploadImage(ctx, "client:AddOfferImage", "/file/addOfferImage", image)
}

// UpdateAvatar replaces the account's avatar.
func (c *Client) UpdateAvatar(ctx context.Context, image []byte) error {
	_, err := c.uploadImage(ctx, "client:UpdateAvatar", "/file/avatar", image)
	return err
}

func (c *Client) uploadImage(ctx context.Context, spanName, path string, image []byte) (int64, error) {
	ctx, span := tracer.Start(ctx, spanName)
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("Cookie", "golden_key="+c.goldenKey).
		SetHeader("x-requested-with", "XMLHttpRequest").
		SetFileReader("file", "image.jpg", bytes.NewReader(image)).
		Post(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to upload image")
		return 0, err
	}
	if res.StatusCode() == http.StatusForbidden {
		return 0, ErrInvalidGoldenKey
	}

	var payload struct {
		FileID int64 `json:"fileId"`
	}
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return 0, extractErr("image upload", "response body: %v", err)
	}
	return payload.FileID, nil
}

func formFlag(set bool, value string) string {
	if set {
		return value
	}
	return ""
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
