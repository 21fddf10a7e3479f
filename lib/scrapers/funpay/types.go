package funpay

import "time"

// PreviewUser is the compact user block embedded in product and order pages.
// AvatarLink is empty exactly when the site renders its default placeholder
// avatar.
type PreviewUser struct {
	UserID     int64
	Username   string
	AvatarLink string
	Online     bool
}

// PreviewSeller is a PreviewUser with the mini review counter shown next to
// offers.
type PreviewSeller struct {
	PreviewUser
	ReviewCount int
}

// PreviewOffer is one row of a lot showcase or a seller profile offer table.
type PreviewOffer struct {
	OfferID          int64
	ShortDescription string
	Price            float64
	AutoDelivery     bool
	Promo            bool
	Seller           PreviewSeller
}

// LotCounter points at a sibling lot of the same game with its offer count.
type LotCounter struct {
	LotID   int64
	Param   string
	Counter int
}

// Lot is a lot page: title, description and the showcase of preview offers.
// Counters never include the lot's own id.
type Lot struct {
	ID            int64
	GameID        int64
	Title         string
	Description   string
	Counters      []LotCounter
	PreviewOffers []PreviewOffer
}

// Offer is a single offer page. ShortDescription is empty when the page
// carries only a detailed description block. Parameters keeps the display
// strings exactly as rendered, keys and values both.
type Offer struct {
	ID                  int64
	ShortDescription    string
	DetailedDescription string
	AutoDelivery        bool
	Price               float64
	AttachmentLinks     []string
	Parameters          map[string]string
	Seller              PreviewSeller
}

// User is a profile page. LastSeenAt is the zero time when the site does not
// disclose it.
type User struct {
	ID           int64
	Username     string
	AvatarLink   string
	Online       bool
	Badges       []string
	RegisteredAt time.Time
	LastSeenAt   time.Time
}

// SellerInfo carries the extra fields present only when a profile page has a
// seller rating block.
type SellerInfo struct {
	Rating        float64
	ReviewCount   int
	PreviewOffers []PreviewOffer
	LastReviews   []SellerReview
}

// Profile is the tagged union of the two profile page shapes. Seller is nil
// for plain users; callers branch on it instead of downcasting.
type Profile struct {
	User
	Seller *SellerInfo
}

// IsSeller reports whether the profile page carried a seller rating block.
func (p Profile) IsSeller() bool {
	return p.Seller != nil
}

// ReviewSender identifies the buyer behind a review, present only when the
// feed entry renders a reviewer identity block.
type ReviewSender struct {
	UserID     int64
	Username   string
	AvatarLink string
	OrderID    string
	CreatedAt  time.Time
}

// SellerReview is one entry of a seller's review feed. Stars is 0 for unrated
// reviews. Sender is nil for the anonymized base variant.
type SellerReview struct {
	GameTitle   string
	Price       float64
	Text        string
	Stars       int
	SellerReply string
	Sender      *ReviewSender
}

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionCanceled  TransactionStatus = "canceled"
	TransactionWaiting   TransactionStatus = "waiting"
)

// TransactionType filters the transactions feed. The values are the literal
// form-field strings the site expects.
type TransactionType string

const (
	TransactionPayment  TransactionType = "replenishment"
	TransactionWithdraw TransactionType = "withdraw"
	TransactionOrder    TransactionType = "order"
	TransactionOther    TransactionType = "other"
)

// Transaction is one entry of the account transactions feed. Price is signed.
type Transaction struct {
	ID            int64
	Title         string
	Price         float64
	PaymentNumber string
	Status        TransactionStatus
	Date          time.Time
}

// Order is an order page. ID is the site-assigned alphanumeric code. Params
// excludes the localized amount row, which is surfaced as Price instead.
type Order struct {
	ID                  string
	Statuses            []string
	ShortDescription    string
	DetailedDescription string
	Price               float64
	Params              map[string]string
	Other               PreviewUser
}

type PromoGameCounter struct {
	LotID int64
	Title string
}

// PromoGame is one game block of the promo filter search results.
type PromoGame struct {
	LotID    int64
	Title    string
	Counters []PromoGameCounter
}

// Session is the credential pair attached to mutating form submissions. It is
// refreshed as a whole, never field by field.
type Session struct {
	CSRFToken    string
	PHPSessionID string
}
