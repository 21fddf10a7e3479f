package funpay

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
)

// GetLot fetches a lot listing page together with its preview offers and
// sibling lot counters.
func (c *Client) GetLot(ctx context.Context, lotID int64) (*Lot, error) {
	ctx, span := tracer.Start(ctx, "client:GetLot")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/lots/%d/", lotID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch lot page")
		return nil, err
	}

	lot, err := extractLot(lotID, res.Body())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract lot")
		return nil, err
	}
	return lot, nil
}

// GetOffer fetches a single offer page.
func (c *Client) GetOffer(ctx context.Context, offerID int64) (*Offer, error) {
	ctx, span := tracer.Start(ctx, "client:GetOffer")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParam("id", fmt.Sprint(offerID)).
		Get("/lots/offer")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch offer page")
		return nil, err
	}

	offer, err := extractOffer(offerID, res.Body())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract offer")
		return nil, err
	}
	return offer, nil
}

// GetUser fetches a profile page. When the client holds a golden key the
// request is authenticated, which makes the account's own profile render its
// full offer table. Sellers come back with the Seller block populated.
func (c *Client) GetUser(ctx context.Context, userID int64) (*Profile, error) {
	ctx, span := tracer.Start(ctx, "client:GetUser")
	defer span.End()

	req := c.Http.R().SetContext(ctx)
	if c.goldenKey != "" {
		req.SetHeader("Cookie", "golden_key="+c.goldenKey)
	}
	res, err := req.Get(fmt.Sprintf("/users/%d/", userID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch user page")
		return nil, err
	}

	profile, err := extractProfile(userID, time.Now(), res.Body())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract user")
		return nil, err
	}
	return profile, nil
}

// GetOrder fetches one of the account's orders. Requires a golden key; order
// ids are short alphanumeric codes, not numbers.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	ctx, span := tracer.Start(ctx, "client:GetOrder")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("Cookie", "golden_key="+c.goldenKey).
		Get(fmt.Sprintf("/orders/%s/", orderID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch order page")
		return nil, err
	}

	order, err := extractOrder(orderID, res.Body())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract order")
		return nil, err
	}
	return order, nil
}

// GetPromoGames searches the games with active promotions. The endpoint
// answers with a json envelope wrapping an html fragment.
func (c *Client) GetPromoGames(ctx context.Context, query string) ([]PromoGame, error) {
	ctx, span := tracer.Start(ctx, "client:GetPromoGames")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("x-requested-with", "XMLHttpRequest").
		SetMultipartFormData(map[string]string{"query": query}).
		Post("/games/promoFilter")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch promo games")
		return nil, err
	}

	games, err := extractPromoGames(res.Body())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract promo games")
		return nil, err
	}
	return games, nil
}
