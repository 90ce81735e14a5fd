package inquiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"freight-marketplace/internal/logger"
)

// Columns is the workbook schema, in the order rows are written. The last
// two values are computed server-side.
var Columns = []string{
	"name",
	"companyName",
	"phone",
	"gst",
	"pickupLocation",
	"pickupAddressLine1",
	"pickupAddressLine2",
	"pickupPincode",
	"dropLocation",
	"dropAddressLine1",
	"dropAddressLine2",
	"dropPincode",
	"materialType",
	"weight",
	"length",
	"width",
	"height",
	"expectedPickup",
	"expectedDelivery",
	"transportMode",
	"shipmentType",
	"materialValue",
	"ebayBill",
	"customMaterialType",
	"coolingType",
	"truckSize",
	"manpower",
	"distance",
	"submittedAt",
}

// DistanceUnavailable is what ends up in the distance column when the
// mapping provider cannot resolve a route. Submissions are never rejected
// over it.
const DistanceUnavailable = "Distance not available"

type DistanceResolver interface {
	DrivingDistance(ctx context.Context, pickupAddress, dropAddress string) (string, error)
}

type RowAppender interface {
	Append(header, row []string) error
}

type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type Service struct {
	resolver    DistanceResolver
	workbook    RowAppender
	mailer      Mailer
	notifyEmail string
}

func NewService(resolver DistanceResolver, workbook RowAppender, mailer Mailer, notifyEmail string) *Service {
	return &Service{
		resolver:    resolver,
		workbook:    workbook,
		mailer:      mailer,
		notifyEmail: notifyEmail,
	}
}

// Submit records an inquiry form. Unknown fields are dropped, missing ones
// default to empty; there is no hard validation on this endpoint.
func (s *Service) Submit(ctx context.Context, form map[string]any) (map[string]string, error) {
	record := make(map[string]string, len(Columns))
	for _, column := range Columns {
		record[column] = stringify(form[column])
	}

	pickup := joinAddress(record["pickupLocation"], record["pickupAddressLine1"], record["pickupAddressLine2"], record["pickupPincode"])
	drop := joinAddress(record["dropLocation"], record["dropAddressLine1"], record["dropAddressLine2"], record["dropPincode"])

	distance, err := s.resolver.DrivingDistance(ctx, pickup, drop)
	if err != nil {
		logger.Warn("distance lookup failed",
			zap.String("event", "inquiry_distance_failed"),
			zap.Error(err))
		distance = DistanceUnavailable
	}
	record["distance"] = distance
	record["submittedAt"] = time.Now().UTC().Format(time.RFC3339)

	row := make([]string, len(Columns))
	for i, column := range Columns {
		row[i] = record[column]
	}
	if err := s.workbook.Append(Columns, row); err != nil {
		return nil, fmt.Errorf("failed to append inquiry row: %w", err)
	}

	var report strings.Builder
	report.WriteString("<h3>New Inquiry Form Submission</h3><pre>")
	for _, column := range Columns {
		report.WriteString(fmt.Sprintf("%s: %s\n", column, record[column]))
	}
	report.WriteString("</pre>")

	subject := fmt.Sprintf("New Form Submission #%s", record["name"])
	if err := s.mailer.Send(s.notifyEmail, subject, report.String()); err != nil {
		return nil, fmt.Errorf("failed to send inquiry notification: %w", err)
	}

	logger.Info("inquiry recorded", zap.String("event", "inquiry_recorded"))

	return record, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; keep integers free of a trailing .0.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func joinAddress(parts ...string) string {
	return strings.Join(parts, ", ")
}
