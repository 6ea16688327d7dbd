package models

type BannerMetadata struct {
	UploadedAt   string `json:"uploadedAt,omitempty"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

type BannerSlot struct {
	Banner               string          `json:"banner"`
	MobileBanner         string          `json:"mobilebanner"`
	Alt                  string          `json:"alt"`
	BannerMetadata       *BannerMetadata `json:"bannerMetadata,omitempty"`
	MobileBannerMetadata *BannerMetadata `json:"mobilebannerMetadata,omitempty"`
}

// Banners is the single upstream document holding every site banner
// section.
type Banners struct {
	ID                    string     `json:"_id"`
	DocumentID            string     `json:"documentId"`
	HomepageBanner        BannerSlot `json:"homepageBanner"`
	AboutUs               BannerSlot `json:"aboutUs"`
	CommercialBanner      BannerSlot `json:"commercialBanner"`
	PlotBanner            BannerSlot `json:"plotBanner"`
	ResidentialBanner     BannerSlot `json:"residentialBanner"`
	ContactBanners        BannerSlot `json:"contactBanners"`
	CareerBanner          BannerSlot `json:"careerBanner"`
	OurTeamBanner         BannerSlot `json:"ourTeamBanner"`
	TermsConditionsBanner BannerSlot `json:"termsConditionsBanner"`
	PrivacyPolicyBanner   BannerSlot `json:"privacyPolicyBanner"`
}
