package romance

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/imagestore"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/risk"
)

// Intake is the multipart romance questionnaire as submitted.
type Intake struct {
	FullName               string `form:"fullName" validate:"required"`
	Email                  string `form:"email" validate:"required,report_email"`
	Country                string `form:"country" validate:"required"`
	Address                string `form:"address" validate:"required"`
	LocationOfPartner      string `form:"locationOfPartner"`
	PersonName             string `form:"personName" validate:"required"`
	ContactDuration        string `form:"contactDuration" validate:"required"`
	MeetingPlace           string `form:"meetingPlace" validate:"required"`
	OtherMeetingPlace      string `form:"otherMeetingPlace"`
	MetInRealLife          string `form:"metInRealLife" validate:"required"`
	WhyNotMet              string `form:"whyNotMet"`
	CommunicationFrequency string `form:"communicationFrequency" validate:"required"`
	DiscussionTopics       string `form:"discussionTopics" validate:"required"`
	SharedPhotosVideos     string `form:"sharedPhotosVideos" validate:"required"`
	PhotosAuthentic        string `form:"photosAuthentic"`
	AskedForMoney          string `form:"askedForMoney" validate:"required"`
	MoneyAmount            string `form:"moneyAmount"`
	MoneyPurpose           string `form:"moneyPurpose"`
	PersonalInfoShared     string `form:"personalInfoShared" validate:"required"`
	SuspiciousBehavior     string `form:"suspiciousBehavior" validate:"required"`
}

func (in *Intake) normalize() {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in Intake) form() risk.RomanceForm {
	return risk.RomanceForm{
		FullName:               in.FullName,
		Email:                  in.Email,
		Country:                in.Country,
		Address:                in.Address,
		LocationOfPartner:      in.LocationOfPartner,
		PersonName:             in.PersonName,
		ContactDuration:        in.ContactDuration,
		MeetingPlace:           in.MeetingPlace,
		OtherMeetingPlace:      in.OtherMeetingPlace,
		MetInRealLife:          in.MetInRealLife,
		WhyNotMet:              in.WhyNotMet,
		CommunicationFrequency: in.CommunicationFrequency,
		DiscussionTopics:       in.DiscussionTopics,
		SharedPhotosVideos:     in.SharedPhotosVideos,
		PhotosAuthentic:        in.PhotosAuthentic,
		AskedForMoney:          in.AskedForMoney,
		MoneyAmount:            in.MoneyAmount,
		MoneyPurpose:           in.MoneyPurpose,
		PersonalInfoShared:     in.PersonalInfoShared,
		SuspiciousBehavior:     in.SuspiciousBehavior,
	}
}

// Submission is an intake plus the optional photo.
type Submission struct {
	Intake Intake
	Photo  *imagestore.Upload
}

type Result struct {
	Report         *models.RomanceReport
	RiskAssessment risk.Assessment
	DetailedReport risk.DetailedReport
}
