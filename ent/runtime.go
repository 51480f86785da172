// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bidiq/bidiq/ent/message"
	"github.com/bidiq/bidiq/ent/monthlyquota"
	"github.com/bidiq/bidiq/ent/oauthtoken"
	"github.com/bidiq/bidiq/ent/profile"
	"github.com/bidiq/bidiq/ent/schema"
	"github.com/bidiq/bidiq/ent/searchsession"
	"github.com/bidiq/bidiq/ent/searchstatetransition"
	"github.com/bidiq/bidiq/ent/usersubscription"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescKind is the schema descriptor for kind field.
	messageDescKind := messageFields[1].Descriptor()
	// message.DefaultKind holds the default value on creation for the kind field.
	message.DefaultKind = messageDescKind.Default.(string)
	// messageDescRead is the schema descriptor for read field.
	messageDescRead := messageFields[5].Descriptor()
	// message.DefaultRead holds the default value on creation for the read field.
	message.DefaultRead = messageDescRead.Default.(bool)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[6].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	monthlyquotaFields := schema.MonthlyQuota{}.Fields()
	_ = monthlyquotaFields
	// monthlyquotaDescSearchesCount is the schema descriptor for searches_count field.
	monthlyquotaDescSearchesCount := monthlyquotaFields[2].Descriptor()
	// monthlyquota.DefaultSearchesCount holds the default value on creation for the searches_count field.
	monthlyquota.DefaultSearchesCount = monthlyquotaDescSearchesCount.Default.(int)
	// monthlyquotaDescUpdatedAt is the schema descriptor for updated_at field.
	monthlyquotaDescUpdatedAt := monthlyquotaFields[3].Descriptor()
	// monthlyquota.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	monthlyquota.DefaultUpdatedAt = monthlyquotaDescUpdatedAt.Default.(func() time.Time)
	// monthlyquota.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	monthlyquota.UpdateDefaultUpdatedAt = monthlyquotaDescUpdatedAt.UpdateDefault.(func() time.Time)
	oauthtokenFields := schema.OAuthToken{}.Fields()
	_ = oauthtokenFields
	// oauthtokenDescCreatedAt is the schema descriptor for created_at field.
	oauthtokenDescCreatedAt := oauthtokenFields[5].Descriptor()
	// oauthtoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	oauthtoken.DefaultCreatedAt = oauthtokenDescCreatedAt.Default.(func() time.Time)
	// oauthtokenDescUpdatedAt is the schema descriptor for updated_at field.
	oauthtokenDescUpdatedAt := oauthtokenFields[6].Descriptor()
	// oauthtoken.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	oauthtoken.DefaultUpdatedAt = oauthtokenDescUpdatedAt.Default.(func() time.Time)
	// oauthtoken.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	oauthtoken.UpdateDefaultUpdatedAt = oauthtokenDescUpdatedAt.UpdateDefault.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescIsAdmin is the schema descriptor for is_admin field.
	profileDescIsAdmin := profileFields[2].Descriptor()
	// profile.DefaultIsAdmin holds the default value on creation for the is_admin field.
	profile.DefaultIsAdmin = profileDescIsAdmin.Default.(bool)
	// profileDescPlanType is the schema descriptor for plan_type field.
	profileDescPlanType := profileFields[3].Descriptor()
	// profile.DefaultPlanType holds the default value on creation for the plan_type field.
	profile.DefaultPlanType = profileDescPlanType.Default.(string)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[5].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	searchsessionFields := schema.SearchSession{}.Fields()
	_ = searchsessionFields
	// searchsessionDescStartedAt is the schema descriptor for started_at field.
	searchsessionDescStartedAt := searchsessionFields[10].Descriptor()
	// searchsession.DefaultStartedAt holds the default value on creation for the started_at field.
	searchsession.DefaultStartedAt = searchsessionDescStartedAt.Default.(func() time.Time)
	// searchsessionDescTotalRaw is the schema descriptor for total_raw field.
	searchsessionDescTotalRaw := searchsessionFields[14].Descriptor()
	// searchsession.DefaultTotalRaw holds the default value on creation for the total_raw field.
	searchsession.DefaultTotalRaw = searchsessionDescTotalRaw.Default.(int)
	// searchsessionDescTotalFiltered is the schema descriptor for total_filtered field.
	searchsessionDescTotalFiltered := searchsessionFields[15].Descriptor()
	// searchsession.DefaultTotalFiltered holds the default value on creation for the total_filtered field.
	searchsession.DefaultTotalFiltered = searchsessionDescTotalFiltered.Default.(int)
	// searchsessionDescValorTotal is the schema descriptor for valor_total field.
	searchsessionDescValorTotal := searchsessionFields[16].Descriptor()
	// searchsession.DefaultValorTotal holds the default value on creation for the valor_total field.
	searchsession.DefaultValorTotal = searchsessionDescValorTotal.Default.(float64)
	// searchsessionDescCreatedAt is the schema descriptor for created_at field.
	searchsessionDescCreatedAt := searchsessionFields[20].Descriptor()
	// searchsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	searchsession.DefaultCreatedAt = searchsessionDescCreatedAt.Default.(func() time.Time)
	searchstatetransitionFields := schema.SearchStateTransition{}.Fields()
	_ = searchstatetransitionFields
	// searchstatetransitionDescDurationSincePreviousMs is the schema descriptor for duration_since_previous_ms field.
	searchstatetransitionDescDurationSincePreviousMs := searchstatetransitionFields[5].Descriptor()
	// searchstatetransition.DefaultDurationSincePreviousMs holds the default value on creation for the duration_since_previous_ms field.
	searchstatetransition.DefaultDurationSincePreviousMs = searchstatetransitionDescDurationSincePreviousMs.Default.(int64)
	// searchstatetransitionDescCreatedAt is the schema descriptor for created_at field.
	searchstatetransitionDescCreatedAt := searchstatetransitionFields[6].Descriptor()
	// searchstatetransition.DefaultCreatedAt holds the default value on creation for the created_at field.
	searchstatetransition.DefaultCreatedAt = searchstatetransitionDescCreatedAt.Default.(func() time.Time)
	usersubscriptionFields := schema.UserSubscription{}.Fields()
	_ = usersubscriptionFields
	// usersubscriptionDescPlanID is the schema descriptor for plan_id field.
	usersubscriptionDescPlanID := usersubscriptionFields[1].Descriptor()
	// usersubscription.DefaultPlanID holds the default value on creation for the plan_id field.
	usersubscription.DefaultPlanID = usersubscriptionDescPlanID.Default.(string)
	// usersubscriptionDescCreatedAt is the schema descriptor for created_at field.
	usersubscriptionDescCreatedAt := usersubscriptionFields[4].Descriptor()
	// usersubscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersubscription.DefaultCreatedAt = usersubscriptionDescCreatedAt.Default.(func() time.Time)
	// usersubscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	usersubscriptionDescUpdatedAt := usersubscriptionFields[5].Descriptor()
	// usersubscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersubscription.DefaultUpdatedAt = usersubscriptionDescUpdatedAt.Default.(func() time.Time)
	// usersubscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersubscription.UpdateDefaultUpdatedAt = usersubscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
