package pdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"rentmate/internal/domain/entity"
)

// Signature placement on the lease template: page 8 carries the signature
// block; shorter documents fall back to their last page. Offsets are PDF
// points from the bottom-left corner.
const (
	signaturePage  = 8
	signatureScale = 0.25
)

var signaturePositions = map[string]struct{ X, Y int }{
	entity.RoleLandlord: {X: 260, Y: 525},
	entity.RoleTenant:   {X: 260, Y: 370},
}

// LeaseRenderer fills the lease AcroForm template and stamps signature
// images onto the stored PDF.
type LeaseRenderer struct {
	templatePath string
	conf         *model.Configuration
}

func NewLeaseRenderer(templatePath string) *LeaseRenderer {
	return &LeaseRenderer{
		templatePath: templatePath,
		conf:         model.NewDefaultConfiguration(),
	}
}

// ROCDateParts splits an ISO "YYYY-MM-DD" date into Republic-of-China
// calendar parts (year minus 1911). Missing input yields empty parts, which
// render as blank form fields.
func ROCDateParts(date string) (year, month, day string) {
	if date == "" {
		return "", "", ""
	}

	parts := strings.SplitN(date, "-", 3)
	if y, err := strconv.Atoi(parts[0]); err == nil {
		year = strconv.Itoa(y - 1911)
	}
	if len(parts) > 1 {
		month = strings.TrimPrefix(parts[1], "0")
	}
	if len(parts) > 2 {
		day = strings.TrimPrefix(parts[2], "0")
	}

	return year, month, day
}

type formTextField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Locked bool   `json:"locked"`
}

type formGroup struct {
	TextFields []formTextField `json:"textfield"`
}

type formData struct {
	Forms []formGroup `json:"forms"`
}

// Render fills the lease template's form fields from the contract terms.
// Absent terms render as empty strings rather than failing.
func (r *LeaseRenderer) Render(contract *entity.Contract) ([]byte, error) {
	template, err := os.ReadFile(r.templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read lease template: %w", err)
	}

	now := time.Now()
	startYear, startMonth, startDay := ROCDateParts(contract.PeriodStart)
	endYear, endMonth, endDay := ROCDateParts(contract.PeriodEnd)

	rentAmount := ""
	if contract.Price > 0 {
		rentAmount = strconv.Itoa(contract.Price)
	}

	fields := []formTextField{
		{Name: "todayyear", Value: strconv.Itoa(now.Year() - 1911)},
		{Name: "todaymonth", Value: strconv.Itoa(int(now.Month()))},
		{Name: "todaydate", Value: strconv.Itoa(now.Day())},
		{Name: "landlordName", Value: contract.LandlordName},
		{Name: "tenantName", Value: contract.TenantName},
		{Name: "rentAmount", Value: rentAmount},
		{Name: "depositmonth", Value: contract.DepositMonths},
		{Name: "depositfee", Value: contract.DepositFee},
		{Name: "periodStartyear", Value: startYear},
		{Name: "periodStartmonth", Value: startMonth},
		{Name: "periodStartdate", Value: startDay},
		{Name: "periodEndyear", Value: endYear},
		{Name: "periodEndmonth", Value: endMonth},
		{Name: "periodEnddate", Value: endDay},
		{Name: "otherTerms", Value: contract.OtherTerms},
		{Name: "address", Value: contract.Address},
	}

	payload, err := json.Marshal(formData{Forms: []formGroup{{TextFields: fields}}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal form data: %w", err)
	}

	var filled bytes.Buffer
	if err := api.FillForm(bytes.NewReader(template), bytes.NewReader(payload), &filled, r.conf); err != nil {
		return nil, fmt.Errorf("failed to fill lease form: %w", err)
	}

	return filled.Bytes(), nil
}

// Stamp draws a signature PNG at the role's fixed coordinate and locks the
// form fields of the result.
func (r *LeaseRenderer) Stamp(pdf []byte, signaturePNG []byte, role string) ([]byte, error) {
	pos, ok := signaturePositions[role]
	if !ok {
		return nil, fmt.Errorf("no signature position for role %q", role)
	}

	pdfCtx, err := api.ReadContext(bytes.NewReader(pdf), r.conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read contract PDF: %w", err)
	}

	page := signaturePage
	if pdfCtx.PageCount < signaturePage {
		page = pdfCtx.PageCount
	}

	desc := fmt.Sprintf("pos:bl, off:%d %d, scale:%.2f abs, rot:0", pos.X, pos.Y, signatureScale)
	wm, err := api.ImageWatermarkForReader(bytes.NewReader(signaturePNG), desc, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare signature stamp: %w", err)
	}

	var stamped bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(pdf), &stamped, []string{strconv.Itoa(page)}, wm, r.conf); err != nil {
		return nil, fmt.Errorf("failed to stamp signature: %w", err)
	}

	var locked bytes.Buffer
	if err := api.LockFormFields(bytes.NewReader(stamped.Bytes()), &locked, nil, r.conf); err != nil {
		// Replacement PDFs may carry no form at all; the stamp still stands.
		return stamped.Bytes(), nil
	}

	return locked.Bytes(), nil
}
