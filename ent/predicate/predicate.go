// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// MonthlyQuota is the predicate function for monthlyquota builders.
type MonthlyQuota func(*sql.Selector)

// OAuthToken is the predicate function for oauthtoken builders.
type OAuthToken func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// SearchSession is the predicate function for searchsession builders.
type SearchSession func(*sql.Selector)

// SearchStateTransition is the predicate function for searchstatetransition builders.
type SearchStateTransition func(*sql.Selector)

// UserSubscription is the predicate function for usersubscription builders.
type UserSubscription func(*sql.Selector)
