// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "document_format", Type: field.TypeString, Nullable: true},
		{Name: "recognizer_status", Type: field.TypeString, Nullable: true},
		{Name: "recognizer_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "po_number", Type: field.TypeString, Nullable: true},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "account_number", Type: field.TypeString, Nullable: true},
		{Name: "order_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "tax_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "tax_period", Type: field.TypeString, Nullable: true},
		{Name: "net_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "vat_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "gross_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "delivery_post_code", Type: field.TypeString, Nullable: true},
		{Name: "unique_run_identifier", Type: field.TypeString},
		{Name: "thumbprint", Type: field.TypeString, Nullable: true},
		{Name: "model_id", Type: field.TypeString, Nullable: true},
		{Name: "model_version", Type: field.TypeString, Nullable: true},
		{Name: "is_valid", Type: field.TypeBool, Default: false},
		{Name: "terminal_error_count", Type: field.TypeInt, Default: 0},
		{Name: "warning_error_count", Type: field.TypeInt, Default: 0},
		{Name: "shredding_utc_time", Type: field.TypeTime},
		{Name: "time_to_shred_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_unique_run_identifier",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[15]},
			},
			{
				Name:    "document_document_format_shredding_utc_time",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[2], DocumentsColumns[22]},
			},
			{
				Name:    "document_is_valid",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[19]},
			},
		},
	}
	// DocumentErrorsColumns holds the columns for the "document_errors" table.
	DocumentErrorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "error_code", Type: field.TypeString},
		{Name: "severity", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// DocumentErrorsTable holds the schema information for the "document_errors" table.
	DocumentErrorsTable = &schema.Table{
		Name:       "document_errors",
		Columns:    DocumentErrorsColumns,
		PrimaryKey: []*schema.Column{DocumentErrorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_errors_documents_shredding_errors",
				Columns:    []*schema.Column{DocumentErrorsColumns[4]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documenterror_document_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentErrorsColumns[4]},
			},
			{
				Name:    "documenterror_error_code",
				Unique:  false,
				Columns: []*schema.Column{DocumentErrorsColumns[1]},
			},
		},
	}
	// DocumentLineItemsColumns holds the columns for the "document_line_items" table.
	DocumentLineItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "line_number", Type: field.TypeString, Size: 2},
		{Name: "item_description", Type: field.TypeString, Nullable: true},
		{Name: "line_quantity", Type: field.TypeString, Nullable: true},
		{Name: "unit_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,4)"}},
		{Name: "net_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,4)"}},
		{Name: "calculated_quantity", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,4)"}},
		{Name: "vat_code", Type: field.TypeString, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// DocumentLineItemsTable holds the schema information for the "document_line_items" table.
	DocumentLineItemsTable = &schema.Table{
		Name:       "document_line_items",
		Columns:    DocumentLineItemsColumns,
		PrimaryKey: []*schema.Column{DocumentLineItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_line_items_documents_line_items",
				Columns:    []*schema.Column{DocumentLineItemsColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentlineitem_document_id_line_number",
				Unique:  false,
				Columns: []*schema.Column{DocumentLineItemsColumns[8], DocumentLineItemsColumns[1]},
			},
		},
	}
	// ModelTrainingsColumns holds the columns for the "model_trainings" table.
	ModelTrainingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_format", Type: field.TypeString},
		{Name: "model_id", Type: field.TypeString},
		{Name: "model_version", Type: field.TypeInt},
		{Name: "average_model_accuracy", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,4)"}},
		{Name: "training_documents", Type: field.TypeJSON, Nullable: true},
		{Name: "trained_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ModelTrainingsTable holds the schema information for the "model_trainings" table.
	ModelTrainingsTable = &schema.Table{
		Name:       "model_trainings",
		Columns:    ModelTrainingsColumns,
		PrimaryKey: []*schema.Column{ModelTrainingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modeltraining_document_format_model_version",
				Unique:  true,
				Columns: []*schema.Column{ModelTrainingsColumns[1], ModelTrainingsColumns[3]},
			},
			{
				Name:    "modeltraining_model_id",
				Unique:  false,
				Columns: []*schema.Column{ModelTrainingsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		DocumentErrorsTable,
		DocumentLineItemsTable,
		ModelTrainingsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	DocumentErrorsTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentErrorsTable.Annotation = &entsql.Annotation{
		Table: "document_errors",
	}
	DocumentLineItemsTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentLineItemsTable.Annotation = &entsql.Annotation{
		Table: "document_line_items",
	}
	ModelTrainingsTable.Annotation = &entsql.Annotation{
		Table: "model_trainings",
	}
}
