// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/formshred/formshred/db/ent/schema"
	"github.com/formshred/formshred/gen/ent/document"
	"github.com/formshred/formshred/gen/ent/documenterror"
	"github.com/formshred/formshred/gen/ent/documentlineitem"
	"github.com/formshred/formshred/gen/ent/modeltraining"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[1].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescUniqueRunIdentifier is the schema descriptor for unique_run_identifier field.
	documentDescUniqueRunIdentifier := documentFields[15].Descriptor()
	// document.UniqueRunIdentifierValidator is a validator for the "unique_run_identifier" field. It is called by the builders before save.
	document.UniqueRunIdentifierValidator = documentDescUniqueRunIdentifier.Validators[0].(func(string) error)
	// documentDescIsValid is the schema descriptor for is_valid field.
	documentDescIsValid := documentFields[19].Descriptor()
	// document.DefaultIsValid holds the default value on creation for the is_valid field.
	document.DefaultIsValid = documentDescIsValid.Default.(bool)
	// documentDescTerminalErrorCount is the schema descriptor for terminal_error_count field.
	documentDescTerminalErrorCount := documentFields[20].Descriptor()
	// document.DefaultTerminalErrorCount holds the default value on creation for the terminal_error_count field.
	document.DefaultTerminalErrorCount = documentDescTerminalErrorCount.Default.(int)
	// documentDescWarningErrorCount is the schema descriptor for warning_error_count field.
	documentDescWarningErrorCount := documentFields[21].Descriptor()
	// document.DefaultWarningErrorCount holds the default value on creation for the warning_error_count field.
	document.DefaultWarningErrorCount = documentDescWarningErrorCount.Default.(int)
	// documentDescShreddingUtcTime is the schema descriptor for shredding_utc_time field.
	documentDescShreddingUtcTime := documentFields[22].Descriptor()
	// document.DefaultShreddingUtcTime holds the default value on creation for the shredding_utc_time field.
	document.DefaultShreddingUtcTime = documentDescShreddingUtcTime.Default.(func() time.Time)
	// documentDescTimeToShredMs is the schema descriptor for time_to_shred_ms field.
	documentDescTimeToShredMs := documentFields[23].Descriptor()
	// document.DefaultTimeToShredMs holds the default value on creation for the time_to_shred_ms field.
	document.DefaultTimeToShredMs = documentDescTimeToShredMs.Default.(int64)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[24].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[25].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	documenterrorFields := schema.DocumentError{}.Fields()
	_ = documenterrorFields
	// documenterrorDescErrorCode is the schema descriptor for error_code field.
	documenterrorDescErrorCode := documenterrorFields[2].Descriptor()
	// documenterror.ErrorCodeValidator is a validator for the "error_code" field. It is called by the builders before save.
	documenterror.ErrorCodeValidator = documenterrorDescErrorCode.Validators[0].(func(string) error)
	// documenterrorDescSeverity is the schema descriptor for severity field.
	documenterrorDescSeverity := documenterrorFields[3].Descriptor()
	// documenterror.SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	documenterror.SeverityValidator = func() func(string) error {
		validators := documenterrorDescSeverity.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(severity string) error {
			for _, fn := range fns {
				if err := fn(severity); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documenterrorDescID is the schema descriptor for id field.
	documenterrorDescID := documenterrorFields[0].Descriptor()
	// documenterror.DefaultID holds the default value on creation for the id field.
	documenterror.DefaultID = documenterrorDescID.Default.(func() uuid.UUID)
	documentlineitemFields := schema.DocumentLineItem{}.Fields()
	_ = documentlineitemFields
	// documentlineitemDescLineNumber is the schema descriptor for line_number field.
	documentlineitemDescLineNumber := documentlineitemFields[2].Descriptor()
	// documentlineitem.LineNumberValidator is a validator for the "line_number" field. It is called by the builders before save.
	documentlineitem.LineNumberValidator = func() func(string) error {
		validators := documentlineitemDescLineNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(line_number string) error {
			for _, fn := range fns {
				if err := fn(line_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentlineitemDescID is the schema descriptor for id field.
	documentlineitemDescID := documentlineitemFields[0].Descriptor()
	// documentlineitem.DefaultID holds the default value on creation for the id field.
	documentlineitem.DefaultID = documentlineitemDescID.Default.(func() uuid.UUID)
	modeltrainingFields := schema.ModelTraining{}.Fields()
	_ = modeltrainingFields
	// modeltrainingDescDocumentFormat is the schema descriptor for document_format field.
	modeltrainingDescDocumentFormat := modeltrainingFields[1].Descriptor()
	// modeltraining.DocumentFormatValidator is a validator for the "document_format" field. It is called by the builders before save.
	modeltraining.DocumentFormatValidator = modeltrainingDescDocumentFormat.Validators[0].(func(string) error)
	// modeltrainingDescModelID is the schema descriptor for model_id field.
	modeltrainingDescModelID := modeltrainingFields[2].Descriptor()
	// modeltraining.ModelIDValidator is a validator for the "model_id" field. It is called by the builders before save.
	modeltraining.ModelIDValidator = modeltrainingDescModelID.Validators[0].(func(string) error)
	// modeltrainingDescModelVersion is the schema descriptor for model_version field.
	modeltrainingDescModelVersion := modeltrainingFields[3].Descriptor()
	// modeltraining.ModelVersionValidator is a validator for the "model_version" field. It is called by the builders before save.
	modeltraining.ModelVersionValidator = modeltrainingDescModelVersion.Validators[0].(func(int) error)
	// modeltrainingDescTrainedAt is the schema descriptor for trained_at field.
	modeltrainingDescTrainedAt := modeltrainingFields[6].Descriptor()
	// modeltraining.DefaultTrainedAt holds the default value on creation for the trained_at field.
	modeltraining.DefaultTrainedAt = modeltrainingDescTrainedAt.Default.(func() time.Time)
	// modeltrainingDescCreatedAt is the schema descriptor for created_at field.
	modeltrainingDescCreatedAt := modeltrainingFields[7].Descriptor()
	// modeltraining.DefaultCreatedAt holds the default value on creation for the created_at field.
	modeltraining.DefaultCreatedAt = modeltrainingDescCreatedAt.Default.(func() time.Time)
	// modeltrainingDescID is the schema descriptor for id field.
	modeltrainingDescID := modeltrainingFields[0].Descriptor()
	// modeltraining.DefaultID holds the default value on creation for the id field.
	modeltraining.DefaultID = modeltrainingDescID.Default.(func() uuid.UUID)
}
