// Code generated by ent, DO NOT EDIT.

package monthlyquota

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/bidiq/bidiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldEQ(FieldUserID, v))
}

// MonthKey applies equality check predicate on the "month_key" field. It's identical to MonthKeyEQ.
func MonthKey(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldEQ(FieldMonthKey, v))
}

// SearchesCount applies equality check predicate on the "searches_count" field. It's identical to SearchesCountEQ.
func SearchesCount(v int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldEQ(FieldSearchesCount, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldContainsFold(FieldUserID, v))
}

// MonthKeyEQ applies the EQ predicate on the "month_key" field.
func MonthKeyEQ(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldEQ(FieldMonthKey, v))
}

// MonthKeyNEQ applies the NEQ predicate on the "month_key" field.
func MonthKeyNEQ(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldNEQ(FieldMonthKey, v))
}

// MonthKeyIn applies the In predicate on the "month_key" field.
func MonthKeyIn(vs ...string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldIn(FieldMonthKey, vs...))
}

// MonthKeyNotIn applies the NotIn predicate on the "month_key" field.
func MonthKeyNotIn(vs ...string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldNotIn(FieldMonthKey, vs...))
}

// MonthKeyGT applies the GT predicate on the "month_key" field.
func MonthKeyGT(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldGT(FieldMonthKey, v))
}

// MonthKeyGTE applies the GTE predicate on the "month_key" field.
func MonthKeyGTE(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldGTE(FieldMonthKey, v))
}

// MonthKeyLT applies the LT predicate on the "month_key" field.
func MonthKeyLT(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldLT(FieldMonthKey, v))
}

// MonthKeyLTE applies the LTE predicate on the "month_key" field.
func MonthKeyLTE(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldLTE(FieldMonthKey, v))
}

// MonthKeyContains applies the Contains predicate on the "month_key" field.
func MonthKeyContains(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldContains(FieldMonthKey, v))
}

// MonthKeyHasPrefix applies the HasPrefix predicate on the "month_key" field.
func MonthKeyHasPrefix(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldHasPrefix(FieldMonthKey, v))
}

// MonthKeyHasSuffix applies the HasSuffix predicate on the "month_key" field.
func MonthKeyHasSuffix(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldHasSuffix(FieldMonthKey, v))
}

// MonthKeyEqualFold applies the EqualFold predicate on the "month_key" field.
func MonthKeyEqualFold(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldEqualFold(FieldMonthKey, v))
}

// MonthKeyContainsFold applies the ContainsFold predicate on the "month_key" field.
func MonthKeyContainsFold(v string) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldContainsFold(FieldMonthKey, v))
}

// SearchesCountEQ applies the EQ predicate on the "searches_count" field.
func SearchesCountEQ(v int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldEQ(FieldSearchesCount, v))
}

// SearchesCountNEQ applies the NEQ predicate on the "searches_count" field.
func SearchesCountNEQ(v int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldNEQ(FieldSearchesCount, v))
}

// SearchesCountIn applies the In predicate on the "searches_count" field.
func SearchesCountIn(vs ...int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldIn(FieldSearchesCount, vs...))
}

// SearchesCountNotIn applies the NotIn predicate on the "searches_count" field.
func SearchesCountNotIn(vs ...int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldNotIn(FieldSearchesCount, vs...))
}

// SearchesCountGT applies the GT predicate on the "searches_count" field.
func SearchesCountGT(v int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldGT(FieldSearchesCount, v))
}

// SearchesCountGTE applies the GTE predicate on the "searches_count" field.
func SearchesCountGTE(v int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldGTE(FieldSearchesCount, v))
}

// SearchesCountLT applies the LT predicate on the "searches_count" field.
func SearchesCountLT(v int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldLT(FieldSearchesCount, v))
}

// SearchesCountLTE applies the LTE predicate on the "searches_count" field.
func SearchesCountLTE(v int) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldLTE(FieldSearchesCount, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MonthlyQuota) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MonthlyQuota) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MonthlyQuota) predicate.MonthlyQuota {
	return predicate.MonthlyQuota(sql.NotPredicates(p))
}
