package funpay

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"funpaygo/lib/htmlutil"
	"funpaygo/lib/rudate"

	"github.com/PuerkitoBio/goquery"
)

// Extraction is a pure function of the page body: no I/O happens here. Every
// function in this file takes the raw bytes the transport returned and either
// produces a typed record, a NotFoundError when the page renders the site's
// canonical "not found" shape, or an ExtractError when a structural
// assumption about the markup does not hold.

const defaultAvatarPath = "/img/layout/avatar.png"

// the marker the profile page shows for users that never logged in again
const neverSeenMarker = "После регистрации на сайт не заходил"

func parseDocument(page string, body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ExtractError{Page: page, Err: err}
	}
	return doc, nil
}

// isNotFoundPage detects the site's 404 shape: the full-width container AND a
// page header inside it, both at once. The container alone also appears on
// legitimate content pages and must not trigger.
func isNotFoundPage(doc *goquery.Document) bool {
	container := doc.Find(".page-content-full").First()
	if container.Length() == 0 {
		return false
	}
	return container.Find(".page-header").Length() > 0
}

func extractLot(lotID int64, body []byte) (*Lot, error) {
	doc, err := parseDocument("lot", body)
	if err != nil {
		return nil, err
	}
	if isNotFoundPage(doc) {
		return nil, &NotFoundError{Entity: "lot", ID: strconv.FormatInt(lotID, 10)}
	}

	// the first container under #content-body belongs to the page chrome,
	// the second one holds the lot content
	contentBody := doc.Find("#content-body .container").Eq(1)
	heading := doc.Find(".content-with-cd").First()
	if contentBody.Length() == 0 || heading.Length() == 0 {
		return nil, extractErr("lot", "lot content containers are missing")
	}

	gameIDAttr := contentBody.Find(".content-with-cd-wide.showcase").AttrOr("data-game", "")
	gameID, err := strconv.ParseInt(gameIDAttr, 10, 64)
	if err != nil {
		return nil, extractErr("lot", "showcase data-game attr %q: %v", gameIDAttr, err)
	}

	lot := &Lot{
		ID:          lotID,
		GameID:      gameID,
		Title:       htmlutil.CleanText(heading.Find("h1").First()),
		Description: htmlutil.CleanText(heading.Find("p").First()),
	}

	var counterErr error
	doc.Find(".counter-list").First().Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := a.AttrOr("href", "")
		// chips lots are not supported
		if strings.Contains(href, "chips") {
			return true
		}
		counterLotID, err := htmlutil.IDFromPath(href, "lots")
		if err != nil {
			counterErr = extractErr("lot", "counter link: %v", err)
			return false
		}
		if counterLotID == lotID {
			return true
		}
		counter, err := strconv.Atoi(htmlutil.CleanText(a.Find(".counter-value")))
		if err != nil {
			counterErr = extractErr("lot", "counter value: %v", err)
			return false
		}
		lot.Counters = append(lot.Counters, LotCounter{
			LotID:   counterLotID,
			Param:   htmlutil.CleanText(a.Find(".counter-param")),
			Counter: counter,
		})
		return true
	})
	if counterErr != nil {
		return nil, counterErr
	}

	var offerErr error
	contentBody.Find(".tc").First().Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		offer, err := extractShowcaseOffer(a)
		if err != nil {
			offerErr = err
			return false
		}
		lot.PreviewOffers = append(lot.PreviewOffers, offer)
		return true
	})
	if offerErr != nil {
		return nil, offerErr
	}

	return lot, nil
}

// extractShowcaseOffer reads one offer row of a lot showcase, including the
// nested preview seller block.
func extractShowcaseOffer(a *goquery.Selection) (PreviewOffer, error) {
	offerID, err := offerIDFromHref(a.AttrOr("href", ""))
	if err != nil {
		return PreviewOffer{}, extractErr("lot", "showcase offer link: %v", err)
	}

	priceAttr := a.Find(".tc-price").AttrOr("data-s", "")
	price, err := strconv.ParseFloat(priceAttr, 64)
	if err != nil {
		return PreviewOffer{}, extractErr("lot", "offer %d data-s attr %q: %v", offerID, priceAttr, err)
	}

	avatar := a.Find(".avatar-photo")
	sellerID, err := htmlutil.IDFromPath(avatar.AttrOr("data-href", ""), "users")
	if err != nil {
		return PreviewOffer{}, extractErr("lot", "offer %d seller link: %v", offerID, err)
	}

	return PreviewOffer{
		OfferID:          offerID,
		ShortDescription: htmlutil.CleanText(a.Find(".tc-desc-text")),
		Price:            price,
		AutoDelivery:     a.Find(".auto-dlv-icon").Length() > 0,
		Promo:            a.Find(".promo-offer-icon").Length() > 0,
		Seller: PreviewSeller{
			PreviewUser: PreviewUser{
				UserID:     sellerID,
				Username:   htmlutil.CleanText(a.Find(".media-user-name")),
				AvatarLink: avatarLink(htmlutil.URLFromStyle(avatar.AttrOr("style", ""))),
				Online:     a.Find(".media.media-user.online.style-circle").Length() > 0,
			},
			ReviewCount: optionalCount(a.Find(".rating-mini-count").First()),
		},
	}, nil
}

func extractOffer(offerID int64, body []byte) (*Offer, error) {
	doc, err := parseDocument("offer", body)
	if err != nil {
		return nil, err
	}
	if isNotFoundPage(doc) {
		return nil, &NotFoundError{Entity: "offer", ID: strconv.FormatInt(offerID, 10)}
	}

	priceAttr := doc.Find(".form-control.input-lg.selectpicker").First().
		Children().First().AttrOr("data-content", "")
	price, err := parsePrice(priceAttr)
	if err != nil {
		return nil, extractErr("offer", "total price %q: %v", priceAttr, err)
	}

	offer := &Offer{
		ID:           offerID,
		Price:        price,
		AutoDelivery: doc.Find(".offer-header-auto-dlv-label").Length() > 0,
		Parameters:   map[string]string{},
	}

	// one description block means the offer has only the detailed text; a
	// second block promotes the first into the short description; a third
	// holds attachments
	descBlocks := doc.Find(".param-list > .param-item")
	switch {
	case descBlocks.Length() == 1:
		offer.DetailedDescription = htmlutil.CleanText(descBlocks.Eq(0).Find("div").First())
	case descBlocks.Length() >= 2:
		offer.ShortDescription = htmlutil.CleanText(descBlocks.Eq(0).Find("div").First())
		offer.DetailedDescription = htmlutil.CleanText(descBlocks.Eq(1).Find("div").First())
	}
	if descBlocks.Length() > 2 {
		descBlocks.Eq(2).Find(".attachments-item").Each(func(_ int, item *goquery.Selection) {
			offer.AttachmentLinks = append(
				offer.AttachmentLinks,
				item.Find("a").First().AttrOr("href", ""),
			)
		})
	}

	doc.Find(".param-list .row").First().Find(".col-xs-6").Each(func(_ int, col *goquery.Selection) {
		item := col.Find(".param-item").First()
		key := htmlutil.CleanText(item.Find("h5").First())
		offer.Parameters[key] = htmlutil.CleanText(item.Find(".text-bold"))
	})

	reviewCountText := htmlutil.CleanText(doc.Find(".text-mini.text-light.mb5").First())
	reviewCount, err := leadingInt(reviewCountText)
	if err != nil {
		return nil, extractErr("offer", "seller review counter %q: %v", reviewCountText, err)
	}

	previewUser, err := extractPagePreviewUser("offer", doc)
	if err != nil {
		return nil, err
	}
	offer.Seller = PreviewSeller{PreviewUser: previewUser, ReviewCount: reviewCount}

	return offer, nil
}

// extractPagePreviewUser reads the counterparty block shared by offer and
// order pages.
func extractPagePreviewUser(page string, doc *goquery.Document) (PreviewUser, error) {
	nameLink := doc.Find(".media-user-name").First().Find("a").First()
	userID, err := htmlutil.IDFromPath(nameLink.AttrOr("href", ""), "users")
	if err != nil {
		return PreviewUser{}, extractErr(page, "counterparty link: %v", err)
	}
	return PreviewUser{
		UserID:     userID,
		Username:   htmlutil.CleanText(nameLink),
		AvatarLink: avatarLink(doc.Find(".media-user").First().Find("img").AttrOr("src", "")),
		Online:     doc.Find(".media.media-user.online").Length() > 0,
	}, nil
}

func extractProfile(userID int64, now time.Time, body []byte) (*Profile, error) {
	doc, err := parseDocument("user", body)
	if err != nil {
		return nil, err
	}
	if isNotFoundPage(doc) {
		return nil, &NotFoundError{Entity: "user", ID: strconv.FormatInt(userID, 10)}
	}

	header := doc.Find(".container.profile-header").First()
	profile := doc.Find(".profile").First()
	if profile.Length() == 0 {
		return nil, extractErr("user", "profile container is missing")
	}

	user := User{
		ID:         userID,
		Username:   htmlutil.CleanText(profile.Find(".mr4").First()),
		AvatarLink: avatarLink(htmlutil.URLFromStyle(header.Find(".avatar-photo").AttrOr("style", ""))),
		Online:     profile.Find(".mb40.online").Length() > 0,
	}
	profile.Find(".user-badges").First().Children().Each(func(_ int, badge *goquery.Selection) {
		user.Badges = append(user.Badges, htmlutil.CleanText(badge))
	})

	registeredText := htmlutil.CleanText(profile.Find(".text-nowrap").First())
	user.RegisteredAt, err = rudate.ParseRegistered(now, registeredText)
	if err != nil {
		// freshly created accounts render forms the grammar does not cover,
		// fall back to the current time
		user.RegisteredAt = now
	}

	lastSeenText := htmlutil.CleanText(profile.Find(".media-user-status").First())
	switch {
	case strings.Contains(lastSeenText, neverSeenMarker):
		user.LastSeenAt = user.RegisteredAt
	case strings.Contains(lastSeenText, "Онлайн"):
		user.LastSeenAt = now
	default:
		// unparseable last-seen lines mean the value is simply absent
		user.LastSeenAt, _ = rudate.ParseLastSeen(now, lastSeenText)
	}

	ratingBlock := doc.Find(".param-item.mb10").First()
	if ratingBlock.Length() == 0 {
		return &Profile{User: user}, nil
	}

	seller, err := extractSellerInfo(doc, ratingBlock, user, now)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, Seller: seller}, nil
}

// extractSellerInfo reads the seller-only parts of a profile page: rating
// block, offer table and the most recent reviews.
func extractSellerInfo(doc *goquery.Document, ratingBlock *goquery.Selection, user User, now time.Time) (*SellerInfo, error) {
	info := &SellerInfo{}

	ratingText := htmlutil.CleanText(ratingBlock.Find(".big").First())
	if ratingText != "?" {
		rating, err := strconv.ParseFloat(ratingText, 64)
		if err != nil {
			return nil, extractErr("user", "seller rating %q: %v", ratingText, err)
		}
		info.Rating = rating
	}

	reviewCountText := htmlutil.CleanText(ratingBlock.Find(".text-mini.text-light.mb5"))
	reviewCount, err := leadingInt(reviewCountText)
	if err != nil {
		return nil, extractErr("user", "seller review counter %q: %v", reviewCountText, err)
	}
	info.ReviewCount = reviewCount

	self := PreviewSeller{
		PreviewUser: PreviewUser{
			UserID:     user.ID,
			Username:   user.Username,
			AvatarLink: user.AvatarLink,
			Online:     user.Online,
		},
		ReviewCount: reviewCount,
	}

	var offerErr error
	doc.Find(".tc-item").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		offerID, err := offerIDFromHref(item.AttrOr("href", ""))
		if err != nil {
			offerErr = extractErr("user", "profile offer link: %v", err)
			return false
		}
		priceSel := item.Find(".tc-price").First()
		price, err := strconv.ParseFloat(priceSel.AttrOr("data-s", ""), 64)
		if err != nil {
			offerErr = extractErr("user", "profile offer %d price: %v", offerID, err)
			return false
		}
		info.PreviewOffers = append(info.PreviewOffers, PreviewOffer{
			OfferID:          offerID,
			ShortDescription: htmlutil.CleanText(item.Find(".tc-desc-text")),
			Price:            price,
			AutoDelivery:     priceSel.Find(".auto-dlv-icon").Length() > 0,
			// the profile offer table never shows the promo marker
			Promo:  false,
			Seller: self,
		})
		return true
	})
	if offerErr != nil {
		return nil, offerErr
	}

	info.LastReviews, err = extractReviewEntries(doc.Selection, now)
	if err != nil {
		return nil, err
	}
	return info, nil
}

var starsClass = regexp.MustCompile(`rating(\d+)`)

// extractReviewEntries reads every review entry under the given root. An
// entry with a populated reviewer identity block (sender link, order link and
// a non-empty photo, all three) yields the advanced variant; anything else
// yields the anonymized base variant.
func extractReviewEntries(root *goquery.Selection, now time.Time) ([]SellerReview, error) {
	var reviews []SellerReview
	var entryErr error

	root.Find(".review-container").EachWithBreak(func(_ int, container *goquery.Selection) bool {
		compiled := container.Find(".review-compiled-review").First()
		if compiled.Length() == 0 {
			entryErr = extractErr("reviews", "review entry without a compiled body")
			return false
		}

		detail := htmlutil.CleanText(compiled.Find(".review-item-detail"))
		detailParts := strings.Split(detail, ", ")
		price, err := parsePrice(detailParts[len(detailParts)-1])
		if err != nil {
			entryErr = extractErr("reviews", "review detail %q: %v", detail, err)
			return false
		}

		review := SellerReview{
			GameTitle: detailParts[0],
			Price:     price,
			Text:      htmlutil.CleanText(compiled.Find(".review-item-text")),
		}
		if reply := container.Find(".review-compiled-reply").First(); reply.Length() > 0 {
			review.SellerReply = htmlutil.CleanText(reply.Children())
		}
		if stars := compiled.Find(".rating").First(); stars.Length() > 0 {
			groups := starsClass.FindStringSubmatch(stars.Children().First().AttrOr("class", ""))
			if groups == nil {
				entryErr = extractErr("reviews", "unrecognized stars class")
				return false
			}
			review.Stars, _ = strconv.Atoi(groups[1])
		}

		sender := compiled.Find(".media-user-name").First()
		orderLink := compiled.Find(".review-item-order").First()
		photo := compiled.Find(".review-item-photo").First()
		identified := sender.Length() > 0 && orderLink.Length() > 0 &&
			photo.Children().First().Children().Length() > 0

		if identified {
			review.Sender, err = extractReviewSender(sender, orderLink, photo, compiled, now)
			if err != nil {
				entryErr = err
				return false
			}
		}

		reviews = append(reviews, review)
		return true
	})

	if entryErr != nil {
		return nil, entryErr
	}
	return reviews, nil
}

func extractReviewSender(sender, orderLink, photo, compiled *goquery.Selection, now time.Time) (*ReviewSender, error) {
	senderLink := sender.Children().First()
	senderID, err := htmlutil.IDFromPath(senderLink.AttrOr("href", ""), "users")
	if err != nil {
		return nil, extractErr("reviews", "review sender link: %v", err)
	}
	orderID, err := htmlutil.PathTail(orderLink.Children().First().AttrOr("href", ""), "orders")
	if err != nil {
		return nil, extractErr("reviews", "review order link: %v", err)
	}
	createdText := htmlutil.CleanText(compiled.Find(".review-item-date").First())
	createdAt, err := rudate.ParseReviewCreated(now, createdText)
	if err != nil {
		return nil, &ExtractError{Page: "reviews", Err: err}
	}
	return &ReviewSender{
		UserID:     senderID,
		Username:   htmlutil.CleanText(senderLink),
		AvatarLink: avatarLink(photo.Find("img").First().AttrOr("src", "")),
		OrderID:    orderID,
		CreatedAt:  createdAt,
	}, nil
}

// extractTransactionEntries reads every transactions-feed entry under the
// given root. The status comes from the trailing token of the entry's class
// attribute; anything that is neither "complete" nor "cancel" counts as
// waiting.
func extractTransactionEntries(root *goquery.Selection, now time.Time) ([]Transaction, error) {
	var transactions []Transaction
	var entryErr error

	root.Find(".tc-item").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		class := item.AttrOr("class", "")
		status := TransactionWaiting
		switch {
		case strings.HasSuffix(class, "complete"):
			status = TransactionCompleted
		case strings.HasSuffix(class, "cancel"):
			status = TransactionCanceled
		}

		idAttr := item.AttrOr("data-transaction", "")
		id, err := strconv.ParseInt(idAttr, 10, 64)
		if err != nil {
			entryErr = extractErr("transactions", "data-transaction attr %q: %v", idAttr, err)
			return false
		}

		priceText := htmlutil.CleanText(item.Find(".tc-price"))
		price, err := parseSignedPrice(priceText)
		if err != nil {
			entryErr = extractErr("transactions", "price %q: %v", priceText, err)
			return false
		}

		dateText := htmlutil.CleanText(item.Find(".tc-date-time"))
		date, err := rudate.ParseRegistered(now, dateText)
		if err != nil {
			entryErr = &ExtractError{Page: "transactions", Err: err}
			return false
		}

		transactions = append(transactions, Transaction{
			ID:            id,
			Title:         htmlutil.CleanText(item.Find(".tc-title")),
			Price:         price,
			PaymentNumber: htmlutil.CleanText(item.Find(".tc-payment-number")),
			Status:        status,
			Date:          date,
		})
		return true
	})

	if entryErr != nil {
		return nil, entryErr
	}
	return transactions, nil
}

// continuationToken finds the cursor for the next feed page. An absent form,
// an absent second input or an empty value all mean the feed is exhausted.
// The second input is what the page template puts the cursor in; the index is
// deliberate.
func continuationToken(doc *goquery.Document) string {
	form := doc.Find(".dyn-table-form").First()
	if form.Length() == 0 {
		return ""
	}
	return form.Find("input").Eq(1).AttrOr("value", "")
}

func extractOrder(orderID string, body []byte) (*Order, error) {
	doc, err := parseDocument("order", body)
	if err != nil {
		return nil, err
	}
	if isNotFoundPage(doc) {
		return nil, &NotFoundError{Entity: "order", ID: orderID}
	}

	blocks := doc.Find(".page-content").First().Children()
	if blocks.Length() < 3 {
		return nil, extractErr("order", "order page has %d content blocks, need 3", blocks.Length())
	}

	order := &Order{
		ID:     orderID,
		Params: map[string]string{},
	}

	// the first header child is an empty placeholder, the rest hold the
	// status history in order
	blocks.Eq(0).Children().Each(func(i int, status *goquery.Selection) {
		if i == 0 {
			return
		}
		order.Statuses = append(order.Statuses, htmlutil.CleanText(status))
	})

	paramList := blocks.Eq(1)
	var paramErr error
	paramList.Find(".row").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		row.Children().EachWithBreak(func(_ int, col *goquery.Selection) bool {
			pair := col.Find(".param-item").First().Children()
			key := htmlutil.CleanText(pair.Eq(0))
			if key != "Сумма" {
				order.Params[key] = htmlutil.CleanText(pair.Eq(1))
				return true
			}
			// the localized amount row is the order price, not a parameter
			priceText := htmlutil.CleanText(pair.Eq(1).Children().First())
			price, err := parsePrice(priceText)
			if err != nil {
				paramErr = extractErr("order", "amount %q: %v", priceText, err)
				return false
			}
			order.Price = price
			return true
		})
		return paramErr == nil
	})
	if paramErr != nil {
		return nil, paramErr
	}

	order.ShortDescription = htmlutil.CleanText(paramList.Children().Eq(1).Children().Eq(1))
	order.DetailedDescription = htmlutil.CleanText(paramList.Children().Eq(2).Children().Eq(1))

	other, err := extractPagePreviewUser("order", doc)
	if err != nil {
		return nil, err
	}
	order.Other = other

	return order, nil
}

// extractPromoGames unwraps the promo filter JSON envelope and re-enters the
// HTML path on its html fragment.
func extractPromoGames(body []byte) ([]PromoGame, error) {
	var envelope struct {
		HTML string `json:"html"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, extractErr("promo", "filter response envelope: %v", err)
	}

	doc, err := parseDocument("promo", []byte(envelope.HTML))
	if err != nil {
		return nil, err
	}

	var games []PromoGame
	var gameErr error
	doc.Find(".promo-games").EachWithBreak(func(_ int, block *goquery.Selection) bool {
		titleLink := block.Find(".game-title").First().Find("a").First()
		href := titleLink.AttrOr("href", "")
		if strings.Contains(href, "chips") {
			return true
		}
		lotID, err := htmlutil.IDFromPath(href, "lots")
		if err != nil {
			gameErr = extractErr("promo", "game link: %v", err)
			return false
		}

		game := PromoGame{
			LotID: lotID,
			Title: htmlutil.CleanText(titleLink),
		}
		block.Find(".list-inline").Find("li").EachWithBreak(func(_ int, item *goquery.Selection) bool {
			counterLink := item.Find("a").First()
			counterLotID, err := htmlutil.IDFromPath(counterLink.AttrOr("href", ""), "lots")
			if err != nil {
				gameErr = extractErr("promo", "counter link: %v", err)
				return false
			}
			if counterLotID == lotID {
				return true
			}
			game.Counters = append(game.Counters, PromoGameCounter{
				LotID: counterLotID,
				Title: htmlutil.CleanText(counterLink),
			})
			return true
		})
		if gameErr != nil {
			return false
		}

		games = append(games, game)
		return true
	})

	if gameErr != nil {
		return nil, gameErr
	}
	return games, nil
}

var sessionCookie = regexp.MustCompile(`PHPSESSID=([^;]*)`)

// extractSession reads the CSRF token out of the app-data attribute and the
// session id out of the Set-Cookie headers. The server sets several cookies
// on the response, each in its own header, so all of them are scanned.
func extractSession(body []byte, setCookies []string) (Session, error) {
	doc, err := parseDocument("session", body)
	if err != nil {
		return Session{}, err
	}

	appData := doc.Find("body").AttrOr("data-app-data", "")
	var payload struct {
		CSRFToken string `json:"csrf-token"`
	}
	if err := json.Unmarshal([]byte(appData), &payload); err != nil {
		return Session{}, extractErr("session", "app-data attr: %v", err)
	}
	if payload.CSRFToken == "" {
		return Session{}, extractErr("session", "app-data attr carries no csrf token")
	}

	for _, cookie := range setCookies {
		if groups := sessionCookie.FindStringSubmatch(cookie); groups != nil {
			return Session{CSRFToken: payload.CSRFToken, PHPSessionID: groups[1]}, nil
		}
	}
	return Session{}, extractErr("session", "no PHPSESSID in set-cookie headers %q", setCookies)
}

// parsePrice reads a number out of a currency-suffixed string such as
// "от 1111.32 ₽", dropping everything that is not a digit or a dot.
func parsePrice(text string) (float64, error) {
	return strconv.ParseFloat(keepRunes(text, "0123456789."), 64)
}

// parseSignedPrice additionally keeps the sign, normalizing the typographic
// minus the site renders.
func parseSignedPrice(text string) (float64, error) {
	text = strings.ReplaceAll(text, "−", "-")
	return strconv.ParseFloat(keepRunes(text, "0123456789.-"), 64)
}

func keepRunes(s, allowed string) string {
	var out strings.Builder
	for _, c := range s {
		if strings.ContainsRune(allowed, c) {
			out.WriteRune(c)
		}
	}
	return out.String()
}

var leadingDigits = regexp.MustCompile(`^\d+`)

// leadingInt reads the number off the front of a counter phrase such as
// "219 отзывов за 2 года".
func leadingInt(text string) (int, error) {
	match := leadingDigits.FindString(text)
	if match == "" {
		return 0, extractErr("counter", "no leading number in %q", text)
	}
	return strconv.Atoi(match)
}

// optionalCount reads a numeric element that legitimately may be absent,
// yielding 0 when it is.
func optionalCount(sel *goquery.Selection) int {
	if sel.Length() == 0 {
		return 0
	}
	n, _ := strconv.Atoi(htmlutil.CleanText(sel))
	return n
}

func avatarLink(link string) string {
	if link == defaultAvatarPath {
		return ""
	}
	return link
}

// offerIDFromHref reads the id query parameter out of an offer link shaped
// like "/lots/offer?id=N".
func offerIDFromHref(href string) (int64, error) {
	idx := strings.Index(href, "id=")
	if idx < 0 {
		return 0, extractErr("offer", "link %q carries no id parameter", href)
	}
	value := href[idx+len("id="):]
	if amp := strings.IndexByte(value, '&'); amp >= 0 {
		value = value[:amp]
	}
	return strconv.ParseInt(value, 10, 64)
}
