// Code generated by ent, DO NOT EDIT.

package searchstatetransition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/bidiq/bidiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLTE(FieldID, id))
}

// SearchID applies equality check predicate on the "search_id" field. It's identical to SearchIDEQ.
func SearchID(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldSearchID, v))
}

// FromState applies equality check predicate on the "from_state" field. It's identical to FromStateEQ.
func FromState(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldFromState, v))
}

// ToState applies equality check predicate on the "to_state" field. It's identical to ToStateEQ.
func ToState(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldToState, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldStage, v))
}

// DurationSincePreviousMs applies equality check predicate on the "duration_since_previous_ms" field. It's identical to DurationSincePreviousMsEQ.
func DurationSincePreviousMs(v int64) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldDurationSincePreviousMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldCreatedAt, v))
}

// SearchIDEQ applies the EQ predicate on the "search_id" field.
func SearchIDEQ(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldSearchID, v))
}

// SearchIDNEQ applies the NEQ predicate on the "search_id" field.
func SearchIDNEQ(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNEQ(FieldSearchID, v))
}

// SearchIDIn applies the In predicate on the "search_id" field.
func SearchIDIn(vs ...string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldIn(FieldSearchID, vs...))
}

// SearchIDNotIn applies the NotIn predicate on the "search_id" field.
func SearchIDNotIn(vs ...string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNotIn(FieldSearchID, vs...))
}

// SearchIDGT applies the GT predicate on the "search_id" field.
func SearchIDGT(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGT(FieldSearchID, v))
}

// SearchIDGTE applies the GTE predicate on the "search_id" field.
func SearchIDGTE(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGTE(FieldSearchID, v))
}

// SearchIDLT applies the LT predicate on the "search_id" field.
func SearchIDLT(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLT(FieldSearchID, v))
}

// SearchIDLTE applies the LTE predicate on the "search_id" field.
func SearchIDLTE(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLTE(FieldSearchID, v))
}

// SearchIDContains applies the Contains predicate on the "search_id" field.
func SearchIDContains(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldContains(FieldSearchID, v))
}

// SearchIDHasPrefix applies the HasPrefix predicate on the "search_id" field.
func SearchIDHasPrefix(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldHasPrefix(FieldSearchID, v))
}

// SearchIDHasSuffix applies the HasSuffix predicate on the "search_id" field.
func SearchIDHasSuffix(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldHasSuffix(FieldSearchID, v))
}

// SearchIDEqualFold applies the EqualFold predicate on the "search_id" field.
func SearchIDEqualFold(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEqualFold(FieldSearchID, v))
}

// SearchIDContainsFold applies the ContainsFold predicate on the "search_id" field.
func SearchIDContainsFold(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldContainsFold(FieldSearchID, v))
}

// FromStateEQ applies the EQ predicate on the "from_state" field.
func FromStateEQ(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldFromState, v))
}

// FromStateNEQ applies the NEQ predicate on the "from_state" field.
func FromStateNEQ(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNEQ(FieldFromState, v))
}

// FromStateIn applies the In predicate on the "from_state" field.
func FromStateIn(vs ...string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldIn(FieldFromState, vs...))
}

// FromStateNotIn applies the NotIn predicate on the "from_state" field.
func FromStateNotIn(vs ...string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNotIn(FieldFromState, vs...))
}

// FromStateGT applies the GT predicate on the "from_state" field.
func FromStateGT(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGT(FieldFromState, v))
}

// FromStateGTE applies the GTE predicate on the "from_state" field.
func FromStateGTE(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGTE(FieldFromState, v))
}

// FromStateLT applies the LT predicate on the "from_state" field.
func FromStateLT(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLT(FieldFromState, v))
}

// FromStateLTE applies the LTE predicate on the "from_state" field.
func FromStateLTE(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLTE(FieldFromState, v))
}

// FromStateContains applies the Contains predicate on the "from_state" field.
func FromStateContains(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldContains(FieldFromState, v))
}

// FromStateHasPrefix applies the HasPrefix predicate on the "from_state" field.
func FromStateHasPrefix(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldHasPrefix(FieldFromState, v))
}

// FromStateHasSuffix applies the HasSuffix predicate on the "from_state" field.
func FromStateHasSuffix(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldHasSuffix(FieldFromState, v))
}

// FromStateEqualFold applies the EqualFold predicate on the "from_state" field.
func FromStateEqualFold(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEqualFold(FieldFromState, v))
}

// FromStateContainsFold applies the ContainsFold predicate on the "from_state" field.
func FromStateContainsFold(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldContainsFold(FieldFromState, v))
}

// ToStateEQ applies the EQ predicate on the "to_state" field.
func ToStateEQ(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldToState, v))
}

// ToStateNEQ applies the NEQ predicate on the "to_state" field.
func ToStateNEQ(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNEQ(FieldToState, v))
}

// ToStateIn applies the In predicate on the "to_state" field.
func ToStateIn(vs ...string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldIn(FieldToState, vs...))
}

// ToStateNotIn applies the NotIn predicate on the "to_state" field.
func ToStateNotIn(vs ...string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNotIn(FieldToState, vs...))
}

// ToStateGT applies the GT predicate on the "to_state" field.
func ToStateGT(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGT(FieldToState, v))
}

// ToStateGTE applies the GTE predicate on the "to_state" field.
func ToStateGTE(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGTE(FieldToState, v))
}

// ToStateLT applies the LT predicate on the "to_state" field.
func ToStateLT(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLT(FieldToState, v))
}

// ToStateLTE applies the LTE predicate on the "to_state" field.
func ToStateLTE(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLTE(FieldToState, v))
}

// ToStateContains applies the Contains predicate on the "to_state" field.
func ToStateContains(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldContains(FieldToState, v))
}

// ToStateHasPrefix applies the HasPrefix predicate on the "to_state" field.
func ToStateHasPrefix(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldHasPrefix(FieldToState, v))
}

// ToStateHasSuffix applies the HasSuffix predicate on the "to_state" field.
func ToStateHasSuffix(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldHasSuffix(FieldToState, v))
}

// ToStateEqualFold applies the EqualFold predicate on the "to_state" field.
func ToStateEqualFold(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEqualFold(FieldToState, v))
}

// ToStateContainsFold applies the ContainsFold predicate on the "to_state" field.
func ToStateContainsFold(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldContainsFold(FieldToState, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldHasSuffix(FieldStage, v))
}

// StageIsNil applies the IsNil predicate on the "stage" field.
func StageIsNil() predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldIsNull(FieldStage))
}

// StageNotNil applies the NotNil predicate on the "stage" field.
func StageNotNil() predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNotNull(FieldStage))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldContainsFold(FieldStage, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNotNull(FieldDetails))
}

// DurationSincePreviousMsEQ applies the EQ predicate on the "duration_since_previous_ms" field.
func DurationSincePreviousMsEQ(v int64) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldDurationSincePreviousMs, v))
}

// DurationSincePreviousMsNEQ applies the NEQ predicate on the "duration_since_previous_ms" field.
func DurationSincePreviousMsNEQ(v int64) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNEQ(FieldDurationSincePreviousMs, v))
}

// DurationSincePreviousMsIn applies the In predicate on the "duration_since_previous_ms" field.
func DurationSincePreviousMsIn(vs ...int64) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldIn(FieldDurationSincePreviousMs, vs...))
}

// DurationSincePreviousMsNotIn applies the NotIn predicate on the "duration_since_previous_ms" field.
func DurationSincePreviousMsNotIn(vs ...int64) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNotIn(FieldDurationSincePreviousMs, vs...))
}

// DurationSincePreviousMsGT applies the GT predicate on the "duration_since_previous_ms" field.
func DurationSincePreviousMsGT(v int64) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGT(FieldDurationSincePreviousMs, v))
}

// DurationSincePreviousMsGTE applies the GTE predicate on the "duration_since_previous_ms" field.
func DurationSincePreviousMsGTE(v int64) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGTE(FieldDurationSincePreviousMs, v))
}

// DurationSincePreviousMsLT applies the LT predicate on the "duration_since_previous_ms" field.
func DurationSincePreviousMsLT(v int64) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLT(FieldDurationSincePreviousMs, v))
}

// DurationSincePreviousMsLTE applies the LTE predicate on the "duration_since_previous_ms" field.
func DurationSincePreviousMsLTE(v int64) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLTE(FieldDurationSincePreviousMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.SearchStateTransition {
	return predicate.SearchStateTransition(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.SearchSession) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SearchStateTransition) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SearchStateTransition) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SearchStateTransition) predicate.SearchStateTransition {
	return predicate.SearchStateTransition(sql.NotPredicates(p))
}
