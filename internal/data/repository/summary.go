package repository

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// Cancellation code DynamoDB reports when a ConditionExpression rejected an
// item of the transaction.
const conditionalCheckFailedCode = "ConditionalCheckFailed"

// TransactSummary is the outcome of one booking transaction. Exactly one of
// Success, TransactionCancelled, GenericFailure describes the store's answer;
// PreconditionFailed refines TransactionCancelled when a conditional
// expression failed (version mismatch, seat taken, or sold out).
type TransactSummary struct {
	Success              bool
	PreconditionFailed   bool
	TransactionCancelled bool
	GenericFailure       bool
	FailureReason        string
}

// resolveTransactSummary maps the error of TransactWriteItems onto a summary.
// Unknown error shapes are still reported as generic failures rather than
// panicking the booking path.
func resolveTransactSummary(err error) TransactSummary {
	if err == nil {
		return TransactSummary{Success: true}
	}

	var cancelled *types.TransactionCanceledException
	if errors.As(err, &cancelled) {
		for _, reason := range cancelled.CancellationReasons {
			if aws.ToString(reason.Code) == conditionalCheckFailedCode {
				return TransactSummary{
					PreconditionFailed:   true,
					TransactionCancelled: true,
					FailureReason:        "Optimistic locking failed: another actor modified the flight concurrently.",
				}
			}
		}

		return TransactSummary{
			TransactionCancelled: true,
			FailureReason:        "Transaction canceled: " + cancelled.ErrorMessage(),
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return TransactSummary{
			GenericFailure: true,
			FailureReason:  "Transaction failed: " + apiErr.ErrorMessage(),
		}
	}

	return TransactSummary{
		GenericFailure: true,
		FailureReason:  "Transaction failed: " + err.Error(),
	}
}
