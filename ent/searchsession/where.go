// Code generated by ent, DO NOT EDIT.

package searchsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/bidiq/bidiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldUserID, v))
}

// PipelineStage applies equality check predicate on the "pipeline_stage" field. It's identical to PipelineStageEQ.
func PipelineStage(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldPipelineStage, v))
}

// DataInicial applies equality check predicate on the "data_inicial" field. It's identical to DataInicialEQ.
func DataInicial(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldDataInicial, v))
}

// DataFinal applies equality check predicate on the "data_final" field. It's identical to DataFinalEQ.
func DataFinal(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldDataFinal, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldErrorMessage, v))
}

// TotalRaw applies equality check predicate on the "total_raw" field. It's identical to TotalRawEQ.
func TotalRaw(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldTotalRaw, v))
}

// TotalFiltered applies equality check predicate on the "total_filtered" field. It's identical to TotalFilteredEQ.
func TotalFiltered(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldTotalFiltered, v))
}

// ValorTotal applies equality check predicate on the "valor_total" field. It's identical to ValorTotalEQ.
func ValorTotal(v float64) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldValorTotal, v))
}

// ResumoExecutivo applies equality check predicate on the "resumo_executivo" field. It's identical to ResumoExecutivoEQ.
func ResumoExecutivo(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldResumoExecutivo, v))
}

// ExcelPath applies equality check predicate on the "excel_path" field. It's identical to ExcelPathEQ.
func ExcelPath(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldExcelPath, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldStatus, vs...))
}

// PipelineStageEQ applies the EQ predicate on the "pipeline_stage" field.
func PipelineStageEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldPipelineStage, v))
}

// PipelineStageNEQ applies the NEQ predicate on the "pipeline_stage" field.
func PipelineStageNEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldPipelineStage, v))
}

// PipelineStageIn applies the In predicate on the "pipeline_stage" field.
func PipelineStageIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldPipelineStage, vs...))
}

// PipelineStageNotIn applies the NotIn predicate on the "pipeline_stage" field.
func PipelineStageNotIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldPipelineStage, vs...))
}

// PipelineStageGT applies the GT predicate on the "pipeline_stage" field.
func PipelineStageGT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldPipelineStage, v))
}

// PipelineStageGTE applies the GTE predicate on the "pipeline_stage" field.
func PipelineStageGTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldPipelineStage, v))
}

// PipelineStageLT applies the LT predicate on the "pipeline_stage" field.
func PipelineStageLT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldPipelineStage, v))
}

// PipelineStageLTE applies the LTE predicate on the "pipeline_stage" field.
func PipelineStageLTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldPipelineStage, v))
}

// PipelineStageContains applies the Contains predicate on the "pipeline_stage" field.
func PipelineStageContains(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContains(FieldPipelineStage, v))
}

// PipelineStageHasPrefix applies the HasPrefix predicate on the "pipeline_stage" field.
func PipelineStageHasPrefix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasPrefix(FieldPipelineStage, v))
}

// PipelineStageHasSuffix applies the HasSuffix predicate on the "pipeline_stage" field.
func PipelineStageHasSuffix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasSuffix(FieldPipelineStage, v))
}

// PipelineStageIsNil applies the IsNil predicate on the "pipeline_stage" field.
func PipelineStageIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldPipelineStage))
}

// PipelineStageNotNil applies the NotNil predicate on the "pipeline_stage" field.
func PipelineStageNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldPipelineStage))
}

// PipelineStageEqualFold applies the EqualFold predicate on the "pipeline_stage" field.
func PipelineStageEqualFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEqualFold(FieldPipelineStage, v))
}

// PipelineStageContainsFold applies the ContainsFold predicate on the "pipeline_stage" field.
func PipelineStageContainsFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContainsFold(FieldPipelineStage, v))
}

// SectorsIsNil applies the IsNil predicate on the "sectors" field.
func SectorsIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldSectors))
}

// SectorsNotNil applies the NotNil predicate on the "sectors" field.
func SectorsNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldSectors))
}

// UfsIsNil applies the IsNil predicate on the "ufs" field.
func UfsIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldUfs))
}

// UfsNotNil applies the NotNil predicate on the "ufs" field.
func UfsNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldUfs))
}

// DataInicialEQ applies the EQ predicate on the "data_inicial" field.
func DataInicialEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldDataInicial, v))
}

// DataInicialNEQ applies the NEQ predicate on the "data_inicial" field.
func DataInicialNEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldDataInicial, v))
}

// DataInicialIn applies the In predicate on the "data_inicial" field.
func DataInicialIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldDataInicial, vs...))
}

// DataInicialNotIn applies the NotIn predicate on the "data_inicial" field.
func DataInicialNotIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldDataInicial, vs...))
}

// DataInicialGT applies the GT predicate on the "data_inicial" field.
func DataInicialGT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldDataInicial, v))
}

// DataInicialGTE applies the GTE predicate on the "data_inicial" field.
func DataInicialGTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldDataInicial, v))
}

// DataInicialLT applies the LT predicate on the "data_inicial" field.
func DataInicialLT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldDataInicial, v))
}

// DataInicialLTE applies the LTE predicate on the "data_inicial" field.
func DataInicialLTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldDataInicial, v))
}

// DataInicialIsNil applies the IsNil predicate on the "data_inicial" field.
func DataInicialIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldDataInicial))
}

// DataInicialNotNil applies the NotNil predicate on the "data_inicial" field.
func DataInicialNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldDataInicial))
}

// DataFinalEQ applies the EQ predicate on the "data_final" field.
func DataFinalEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldDataFinal, v))
}

// DataFinalNEQ applies the NEQ predicate on the "data_final" field.
func DataFinalNEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldDataFinal, v))
}

// DataFinalIn applies the In predicate on the "data_final" field.
func DataFinalIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldDataFinal, vs...))
}

// DataFinalNotIn applies the NotIn predicate on the "data_final" field.
func DataFinalNotIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldDataFinal, vs...))
}

// DataFinalGT applies the GT predicate on the "data_final" field.
func DataFinalGT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldDataFinal, v))
}

// DataFinalGTE applies the GTE predicate on the "data_final" field.
func DataFinalGTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldDataFinal, v))
}

// DataFinalLT applies the LT predicate on the "data_final" field.
func DataFinalLT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldDataFinal, v))
}

// DataFinalLTE applies the LTE predicate on the "data_final" field.
func DataFinalLTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldDataFinal, v))
}

// DataFinalIsNil applies the IsNil predicate on the "data_final" field.
func DataFinalIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldDataFinal))
}

// DataFinalNotNil applies the NotNil predicate on the "data_final" field.
func DataFinalNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldDataFinal))
}

// CustomKeywordsIsNil applies the IsNil predicate on the "custom_keywords" field.
func CustomKeywordsIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldCustomKeywords))
}

// CustomKeywordsNotNil applies the NotNil predicate on the "custom_keywords" field.
func CustomKeywordsNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldCustomKeywords))
}

// FiltersIsNil applies the IsNil predicate on the "filters" field.
func FiltersIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldFilters))
}

// FiltersNotNil applies the NotNil predicate on the "filters" field.
func FiltersNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldFilters))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContainsFold(FieldErrorCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// TotalRawEQ applies the EQ predicate on the "total_raw" field.
func TotalRawEQ(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldTotalRaw, v))
}

// TotalRawNEQ applies the NEQ predicate on the "total_raw" field.
func TotalRawNEQ(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldTotalRaw, v))
}

// TotalRawIn applies the In predicate on the "total_raw" field.
func TotalRawIn(vs ...int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldTotalRaw, vs...))
}

// TotalRawNotIn applies the NotIn predicate on the "total_raw" field.
func TotalRawNotIn(vs ...int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldTotalRaw, vs...))
}

// TotalRawGT applies the GT predicate on the "total_raw" field.
func TotalRawGT(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldTotalRaw, v))
}

// TotalRawGTE applies the GTE predicate on the "total_raw" field.
func TotalRawGTE(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldTotalRaw, v))
}

// TotalRawLT applies the LT predicate on the "total_raw" field.
func TotalRawLT(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldTotalRaw, v))
}

// TotalRawLTE applies the LTE predicate on the "total_raw" field.
func TotalRawLTE(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldTotalRaw, v))
}

// TotalFilteredEQ applies the EQ predicate on the "total_filtered" field.
func TotalFilteredEQ(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldTotalFiltered, v))
}

// TotalFilteredNEQ applies the NEQ predicate on the "total_filtered" field.
func TotalFilteredNEQ(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldTotalFiltered, v))
}

// TotalFilteredIn applies the In predicate on the "total_filtered" field.
func TotalFilteredIn(vs ...int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldTotalFiltered, vs...))
}

// TotalFilteredNotIn applies the NotIn predicate on the "total_filtered" field.
func TotalFilteredNotIn(vs ...int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldTotalFiltered, vs...))
}

// TotalFilteredGT applies the GT predicate on the "total_filtered" field.
func TotalFilteredGT(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldTotalFiltered, v))
}

// TotalFilteredGTE applies the GTE predicate on the "total_filtered" field.
func TotalFilteredGTE(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldTotalFiltered, v))
}

// TotalFilteredLT applies the LT predicate on the "total_filtered" field.
func TotalFilteredLT(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldTotalFiltered, v))
}

// TotalFilteredLTE applies the LTE predicate on the "total_filtered" field.
func TotalFilteredLTE(v int) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldTotalFiltered, v))
}

// ValorTotalEQ applies the EQ predicate on the "valor_total" field.
func ValorTotalEQ(v float64) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldValorTotal, v))
}

// ValorTotalNEQ applies the NEQ predicate on the "valor_total" field.
func ValorTotalNEQ(v float64) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldValorTotal, v))
}

// ValorTotalIn applies the In predicate on the "valor_total" field.
func ValorTotalIn(vs ...float64) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldValorTotal, vs...))
}

// ValorTotalNotIn applies the NotIn predicate on the "valor_total" field.
func ValorTotalNotIn(vs ...float64) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldValorTotal, vs...))
}

// ValorTotalGT applies the GT predicate on the "valor_total" field.
func ValorTotalGT(v float64) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldValorTotal, v))
}

// ValorTotalGTE applies the GTE predicate on the "valor_total" field.
func ValorTotalGTE(v float64) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldValorTotal, v))
}

// ValorTotalLT applies the LT predicate on the "valor_total" field.
func ValorTotalLT(v float64) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldValorTotal, v))
}

// ValorTotalLTE applies the LTE predicate on the "valor_total" field.
func ValorTotalLTE(v float64) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldValorTotal, v))
}

// ResumoExecutivoEQ applies the EQ predicate on the "resumo_executivo" field.
func ResumoExecutivoEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldResumoExecutivo, v))
}

// ResumoExecutivoNEQ applies the NEQ predicate on the "resumo_executivo" field.
func ResumoExecutivoNEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldResumoExecutivo, v))
}

// ResumoExecutivoIn applies the In predicate on the "resumo_executivo" field.
func ResumoExecutivoIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldResumoExecutivo, vs...))
}

// ResumoExecutivoNotIn applies the NotIn predicate on the "resumo_executivo" field.
func ResumoExecutivoNotIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldResumoExecutivo, vs...))
}

// ResumoExecutivoGT applies the GT predicate on the "resumo_executivo" field.
func ResumoExecutivoGT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldResumoExecutivo, v))
}

// ResumoExecutivoGTE applies the GTE predicate on the "resumo_executivo" field.
func ResumoExecutivoGTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldResumoExecutivo, v))
}

// ResumoExecutivoLT applies the LT predicate on the "resumo_executivo" field.
func ResumoExecutivoLT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldResumoExecutivo, v))
}

// ResumoExecutivoLTE applies the LTE predicate on the "resumo_executivo" field.
func ResumoExecutivoLTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldResumoExecutivo, v))
}

// ResumoExecutivoContains applies the Contains predicate on the "resumo_executivo" field.
func ResumoExecutivoContains(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContains(FieldResumoExecutivo, v))
}

// ResumoExecutivoHasPrefix applies the HasPrefix predicate on the "resumo_executivo" field.
func ResumoExecutivoHasPrefix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasPrefix(FieldResumoExecutivo, v))
}

// ResumoExecutivoHasSuffix applies the HasSuffix predicate on the "resumo_executivo" field.
func ResumoExecutivoHasSuffix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasSuffix(FieldResumoExecutivo, v))
}

// ResumoExecutivoIsNil applies the IsNil predicate on the "resumo_executivo" field.
func ResumoExecutivoIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldResumoExecutivo))
}

// ResumoExecutivoNotNil applies the NotNil predicate on the "resumo_executivo" field.
func ResumoExecutivoNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldResumoExecutivo))
}

// ResumoExecutivoEqualFold applies the EqualFold predicate on the "resumo_executivo" field.
func ResumoExecutivoEqualFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEqualFold(FieldResumoExecutivo, v))
}

// ResumoExecutivoContainsFold applies the ContainsFold predicate on the "resumo_executivo" field.
func ResumoExecutivoContainsFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContainsFold(FieldResumoExecutivo, v))
}

// DestaquesIsNil applies the IsNil predicate on the "destaques" field.
func DestaquesIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldDestaques))
}

// DestaquesNotNil applies the NotNil predicate on the "destaques" field.
func DestaquesNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldDestaques))
}

// ExcelPathEQ applies the EQ predicate on the "excel_path" field.
func ExcelPathEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldExcelPath, v))
}

// ExcelPathNEQ applies the NEQ predicate on the "excel_path" field.
func ExcelPathNEQ(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldExcelPath, v))
}

// ExcelPathIn applies the In predicate on the "excel_path" field.
func ExcelPathIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldExcelPath, vs...))
}

// ExcelPathNotIn applies the NotIn predicate on the "excel_path" field.
func ExcelPathNotIn(vs ...string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldExcelPath, vs...))
}

// ExcelPathGT applies the GT predicate on the "excel_path" field.
func ExcelPathGT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldExcelPath, v))
}

// ExcelPathGTE applies the GTE predicate on the "excel_path" field.
func ExcelPathGTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldExcelPath, v))
}

// ExcelPathLT applies the LT predicate on the "excel_path" field.
func ExcelPathLT(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldExcelPath, v))
}

// ExcelPathLTE applies the LTE predicate on the "excel_path" field.
func ExcelPathLTE(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldExcelPath, v))
}

// ExcelPathContains applies the Contains predicate on the "excel_path" field.
func ExcelPathContains(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContains(FieldExcelPath, v))
}

// ExcelPathHasPrefix applies the HasPrefix predicate on the "excel_path" field.
func ExcelPathHasPrefix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasPrefix(FieldExcelPath, v))
}

// ExcelPathHasSuffix applies the HasSuffix predicate on the "excel_path" field.
func ExcelPathHasSuffix(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldHasSuffix(FieldExcelPath, v))
}

// ExcelPathIsNil applies the IsNil predicate on the "excel_path" field.
func ExcelPathIsNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIsNull(FieldExcelPath))
}

// ExcelPathNotNil applies the NotNil predicate on the "excel_path" field.
func ExcelPathNotNil() predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotNull(FieldExcelPath))
}

// ExcelPathEqualFold applies the EqualFold predicate on the "excel_path" field.
func ExcelPathEqualFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEqualFold(FieldExcelPath, v))
}

// ExcelPathContainsFold applies the ContainsFold predicate on the "excel_path" field.
func ExcelPathContainsFold(v string) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldContainsFold(FieldExcelPath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SearchSession {
	return predicate.SearchSession(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTransitions applies the HasEdge predicate on the "transitions" edge.
func HasTransitions() predicate.SearchSession {
	return predicate.SearchSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransitionsTable, TransitionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransitionsWith applies the HasEdge predicate on the "transitions" edge with a given conditions (other predicates).
func HasTransitionsWith(preds ...predicate.SearchStateTransition) predicate.SearchSession {
	return predicate.SearchSession(func(s *sql.Selector) {
		step := newTransitionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SearchSession) predicate.SearchSession {
	return predicate.SearchSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SearchSession) predicate.SearchSession {
	return predicate.SearchSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SearchSession) predicate.SearchSession {
	return predicate.SearchSession(sql.NotPredicates(p))
}
