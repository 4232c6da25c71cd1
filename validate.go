package xendit

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Closed value sets enforced client-side.
var (
	customerTypes = []string{CustomerTypeIndividual, CustomerTypeBusiness}

	paymentMethodTypes = []string{
		PaymentMethodTypeCard,
		PaymentMethodTypeEWallet,
		PaymentMethodTypeDirectDebit,
		PaymentMethodTypeOverTheCounter,
		PaymentMethodTypeVirtualAccount,
		PaymentMethodTypeQRCode,
	}

	reusabilities = []string{ReusabilityOneTimeUse, ReusabilityMultipleUse}

	refundReasons = []string{
		RefundReasonFraudulent,
		RefundReasonDuplicate,
		RefundReasonRequestedByCustomer,
		RefundReasonCancellation,
		RefundReasonOthers,
	}

	genders = []string{"MALE", "FEMALE", "OTHER"}

	businessTypes = []string{
		"CORPORATION",
		"SOLE_PROPRIETOR",
		"PARTNERSHIP",
		"COOPERATIVE",
		"TRUST",
		"NON_PROFIT",
		"GOVERNMENT",
	}
)

// requiredField pairs a wire-format field name with its presence.
type requiredField struct {
	name    string
	present bool
}

// checkRequired validates unconditionally required fields. A single missing
// field reports "{field} is required"; several report the combined
// "Missing required parameters" form.
func checkRequired(fields ...requiredField) error {
	var missing []string
	for _, field := range fields {
		if !field.present {
			missing = append(missing, field.name)
		}
	}
	switch len(missing) {
	case 0:
		return nil
	case 1:
		return newValidationError(missing[0] + " is required")
	default:
		return newValidationError("Missing required parameters: " + strings.Join(missing, ", "))
	}
}

// checkEnum validates membership in a closed value set. Empty values pass so
// optional enum fields are only checked when supplied.
func checkEnum(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return newValidationError(fmt.Sprintf("%s must be one of: %s, got: %s", field, strings.Join(allowed, ", "), value))
}

// rewriteRangeKey maps created/updated range filters into the API's bracket
// notation, e.g. created_gte becomes created[gte]. Other keys pass through.
func rewriteRangeKey(key string) string {
	for _, field := range []string{"created", "updated"} {
		for _, op := range []string{"gte", "lte"} {
			if key == field+"_"+op {
				return field + "[" + op + "]"
			}
		}
	}
	return key
}

// listQuery builds list-filter query values, dropping empty values and
// rewriting date-range keys. pairs alternate key, value.
func listQuery(pairs ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		values.Set(rewriteRangeKey(pairs[i]), pairs[i+1])
	}
	return values
}

// limitValue formats a positive list limit, or "" to omit it.
func limitValue(limit int) string {
	if limit <= 0 {
		return ""
	}
	return strconv.Itoa(limit)
}

// baseHeaders builds the cross-cutting request headers every builder
// supports, dropping absent values.
func baseHeaders(idempotencyKey, forUserID string) map[string]string {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["idempotency-key"] = idempotencyKey
	}
	if forUserID != "" {
		headers["for-user-id"] = forUserID
	}
	return headers
}

// Body construction helpers. Absent optional fields are omitted entirely from
// the outgoing body, never sent as null placeholders.

func putString(body map[string]any, key, value string) {
	if value != "" {
		body[key] = value
	}
}

func putFloat(body map[string]any, key string, value float64) {
	if value != 0 {
		body[key] = value
	}
}

func putMap(body map[string]any, key string, value map[string]any) {
	if value != nil {
		body[key] = value
	}
}

func putSlice(body map[string]any, key string, value []map[string]any) {
	if value != nil {
		body[key] = value
	}
}
