package risk

// RomanceForm is a romance-scam questionnaire. Yes/no answers arrive as the
// literal strings "yes" and "no"; anything else counts as not answered.
type RomanceForm struct {
	FullName               string `json:"fullName" bson:"fullName"`
	Email                  string `json:"email" bson:"email"`
	Country                string `json:"country" bson:"country"`
	Address                string `json:"address" bson:"address"`
	LocationOfPartner      string `json:"locationOfPartner,omitempty" bson:"locationOfPartner,omitempty"`
	PersonName             string `json:"personName" bson:"personName"`
	ContactDuration        string `json:"contactDuration" bson:"contactDuration"`
	MeetingPlace           string `json:"meetingPlace" bson:"meetingPlace"`
	OtherMeetingPlace      string `json:"otherMeetingPlace,omitempty" bson:"otherMeetingPlace,omitempty"`
	MetInRealLife          string `json:"metInRealLife" bson:"metInRealLife"`
	WhyNotMet              string `json:"whyNotMet,omitempty" bson:"whyNotMet,omitempty"`
	CommunicationFrequency string `json:"communicationFrequency" bson:"communicationFrequency"`
	DiscussionTopics       string `json:"discussionTopics" bson:"discussionTopics"`
	SharedPhotosVideos     string `json:"sharedPhotosVideos" bson:"sharedPhotosVideos"`
	PhotosAuthentic        string `json:"photosAuthentic,omitempty" bson:"photosAuthentic,omitempty"`
	AskedForMoney          string `json:"askedForMoney" bson:"askedForMoney"`
	MoneyAmount            string `json:"moneyAmount,omitempty" bson:"moneyAmount,omitempty"`
	MoneyPurpose           string `json:"moneyPurpose,omitempty" bson:"moneyPurpose,omitempty"`
	PersonalInfoShared     string `json:"personalInfoShared" bson:"personalInfoShared"`
	SuspiciousBehavior     string `json:"suspiciousBehavior" bson:"suspiciousBehavior"`
	PhotoUpload            *Image `gorm:"type:jsonb;serializer:json" json:"photoUpload,omitempty" bson:"photoUpload,omitempty"`
}

func (f RomanceForm) notMet() bool       { return f.MetInRealLife == "no" }
func (f RomanceForm) askedMoney() bool   { return f.AskedForMoney == "yes" }
func (f RomanceForm) sharedPhotos() bool { return f.SharedPhotosVideos == "yes" }
func (f RomanceForm) fakePhotos() bool   { return f.PhotosAuthentic == "no" }
func (f RomanceForm) infoShared() bool   { return f.PersonalInfoShared == "yes" }
func (f RomanceForm) dailyContact() bool { return f.CommunicationFrequency == "daily" }

// PlatformForm describes an online platform the reporter wants checked.
type PlatformForm struct {
	FullName           string `json:"fullName" bson:"fullName"`
	Email              string `json:"email" bson:"email"`
	WebsiteURL         string `json:"websiteURL" bson:"websiteURL"`
	PlatformType       string `json:"platformType" bson:"platformType"`
	MoneyInvolved      string `json:"moneyInvolved" bson:"moneyInvolved"`
	InvestmentAmount   string `json:"investmentAmount,omitempty" bson:"investmentAmount,omitempty"`
	SuspiciousFeatures string `json:"suspiciousFeatures" bson:"suspiciousFeatures"`
	ContactMethods     string `json:"contactMethods" bson:"contactMethods"`
	Screenshot         *Image `gorm:"type:jsonb;serializer:json" json:"screenshot,omitempty" bson:"screenshot,omitempty"`
}

// VendorForm describes a social-media seller.
type VendorForm struct {
	FullName                string   `json:"fullName" bson:"fullName"`
	Email                   string   `json:"email" bson:"email"`
	SocialMediaPlatform     string   `json:"socialMediaPlatform" bson:"socialMediaPlatform"`
	AccountUsername         string   `json:"accountUsername" bson:"accountUsername"`
	AccountURL              string   `json:"accountURL" bson:"accountURL"`
	BusinessType            string   `json:"businessType" bson:"businessType"`
	BusinessCategory        string   `json:"businessCategory" bson:"businessCategory"`
	PriceRange              string   `json:"priceRange" bson:"priceRange"`
	PaymentMethods          []string `gorm:"type:jsonb;serializer:json" json:"paymentMethods" bson:"paymentMethods"`
	AccountAge              string   `json:"accountAge" bson:"accountAge"`
	FollowersCount          string   `json:"followersCount" bson:"followersCount"`
	HasBusinessProfile      bool     `json:"hasBusinessProfile" bson:"hasBusinessProfile"`
	VerifiedAccount         bool     `json:"verifiedAccount" bson:"verifiedAccount"`
	HasRefundPolicy         bool     `json:"hasRefundPolicy" bson:"hasRefundPolicy"`
	RefundPolicyDetails     string   `json:"refundPolicyDetails,omitempty" bson:"refundPolicyDetails,omitempty"`
	DeliveryMethod          []string `gorm:"type:jsonb;serializer:json" json:"deliveryMethod,omitempty" bson:"deliveryMethod,omitempty"`
	UrgencyTactics          bool     `json:"urgencyTactics" bson:"urgencyTactics"`
	LimitedTimeOffers       bool     `json:"limitedTimeOffers" bson:"limitedTimeOffers"`
	RequestsPersonalBanking bool     `json:"requestsPersonalBanking" bson:"requestsPersonalBanking"`
	PrePaymentRequired      bool     `json:"prePaymentRequired" bson:"prePaymentRequired"`
	SuspiciousFeatures      string   `json:"suspiciousFeatures" bson:"suspiciousFeatures"`
	Screenshots             []Image  `gorm:"type:jsonb;serializer:json" json:"screenshots" bson:"screenshots"`
}
