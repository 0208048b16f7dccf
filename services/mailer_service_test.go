package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sjmedialabs/kkengineering-sub000/models"
)

func TestAutoReplySubjectPerType(t *testing.T) {
	cases := []struct {
		name    string
		enquiry models.Enquiry
		want    string
	}{
		{
			name:    "product with name",
			enquiry: models.Enquiry{Type: models.EnquiryTypeProduct, ProductName: "VS-30 Vibro Sifter"},
			want:    "Thank you for your enquiry about VS-30 Vibro Sifter",
		},
		{
			name:    "product without name",
			enquiry: models.Enquiry{Type: models.EnquiryTypeGeneralProduct},
			want:    "Thank you for your product enquiry",
		},
		{
			name:    "bulk",
			enquiry: models.Enquiry{Type: models.EnquiryTypeBulk},
			want:    "Thank you for your bulk order enquiry",
		},
		{
			name:    "service",
			enquiry: models.Enquiry{Type: models.EnquiryTypeService},
			want:    "Thank you for your service enquiry",
		},
		{
			name:    "general",
			enquiry: models.Enquiry{Type: models.EnquiryTypeGeneral},
			want:    "Thank you for contacting KK Engineering",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, autoReplySubject(tc.enquiry))
		})
	}
}

func TestAutoReplyHTMLProductRows(t *testing.T) {
	product := models.Enquiry{
		Type:        models.EnquiryTypeProduct,
		Name:        "Ramesh Patel",
		ProductName: "VS-30 Vibro Sifter",
		Message:     "Need a quote for 2 units",
	}
	html := BuildAutoReplyHTML(product, "https://kkengineering.in")
	assert.Contains(t, html, "Dear Ramesh Patel")
	assert.Contains(t, html, "VS-30 Vibro Sifter")
	assert.Contains(t, html, "Need a quote for 2 units")
	assert.Contains(t, html, "https://kkengineering.in/products")

	// A general enquiry never carries product rows, even if the payload
	// smuggled a product name in.
	general := models.Enquiry{
		Type:        models.EnquiryTypeGeneral,
		Name:        "Suresh",
		ProductName: "Should Not Appear",
	}
	html = BuildAutoReplyHTML(general, "https://kkengineering.in")
	assert.NotContains(t, html, "Should Not Appear")
}

func TestAdminNotificationHTMLIncludesProvidedFields(t *testing.T) {
	e := models.Enquiry{
		Type:    models.EnquiryTypeBulk,
		Name:    "Ramesh Patel",
		Email:   "ramesh@example.com",
		Phone:   "+91 98765 43210",
		Company: "Patel Pharma",
		Message: "Bulk order of 10 sifters",
	}
	html := BuildAdminNotificationHTML(e)
	assert.Contains(t, html, "New website enquiry")
	assert.Contains(t, html, "ramesh@example.com")
	assert.Contains(t, html, "+91 98765 43210")
	assert.Contains(t, html, "Patel Pharma")
	assert.Contains(t, html, "Bulk order of 10 sifters")

	// Empty optional fields produce no rows.
	bare := models.Enquiry{Type: models.EnquiryTypeGeneral, Name: "A", Email: "a@b.c"}
	html = BuildAdminNotificationHTML(bare)
	assert.NotContains(t, html, "Phone")
	assert.NotContains(t, html, "Company")
}
