// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package security holds the security groups of the application and the
// access control lists that tie groups to model permissions.
package security

import (
	"fmt"
	"sync"

	"github.com/hexya-erp/hexya-starter/src/tools/logging"
)

const (
	// SuperUserID is the uid of the administrator. It bypasses all
	// access control checks.
	SuperUserID int64 = 1
	// GuestUserID is the uid of the anonymous user
	GuestUserID int64 = 2
)

// A Permission is a bit mask of operations allowed on a model
type Permission uint8

const (
	// Read permission
	Read Permission = 1 << Permission(iota)
	// Write permission
	Write
	// Create permission
	Create
	// Unlink permission (deletion)
	Unlink
	// All permissions
	All = Read | Write | Create | Unlink
)

// A Group of users with the same permissions
type Group struct {
	id      string
	name    string
	implied []*Group
}

// ID of this group
func (g *Group) ID() string {
	return g.id
}

// Name of this group
func (g *Group) Name() string {
	return g.name
}

// ImpliedGroups returns the list of groups implied by this group
func (g *Group) ImpliedGroups() []*Group {
	return g.implied
}

// Implies returns true if this group implies the given group,
// directly or transitively.
func (g *Group) Implies(other *Group) bool {
	for _, imp := range g.implied {
		if imp == other || imp.Implies(other) {
			return true
		}
	}
	return false
}

func (g *Group) String() string {
	return fmt.Sprintf("Group(%s)", g.id)
}

// A GroupCollection keeps track of all security groups, of user
// memberships and of model access control lists.
type GroupCollection struct {
	sync.RWMutex
	groups      map[string]*Group
	memberships map[int64]map[*Group]bool
	acl         map[string]map[*Group]Permission
}

// NewGroup creates a new group with the given id and name and
// registers it in this collection. The group implies all the given
// implied groups. It panics if the id is already registered.
func (gc *GroupCollection) NewGroup(id, name string, implied ...*Group) *Group {
	gc.Lock()
	defer gc.Unlock()
	if _, exists := gc.groups[id]; exists {
		log.Panic("Trying to register a duplicate group", "id", id)
	}
	grp := &Group{
		id:      id,
		name:    name,
		implied: implied,
	}
	gc.groups[id] = grp
	return grp
}

// GetGroup returns the group with the given id or nil if not found
func (gc *GroupCollection) GetGroup(id string) *Group {
	gc.RLock()
	defer gc.RUnlock()
	return gc.groups[id]
}

// AllGroups returns all registered groups
func (gc *GroupCollection) AllGroups() []*Group {
	gc.RLock()
	defer gc.RUnlock()
	res := make([]*Group, 0, len(gc.groups))
	for _, grp := range gc.groups {
		res = append(res, grp)
	}
	return res
}

// AddMembership adds the given uid to the given group and to all its
// implied groups.
func (gc *GroupCollection) AddMembership(uid int64, group *Group) {
	gc.Lock()
	if gc.memberships[uid] == nil {
		gc.memberships[uid] = make(map[*Group]bool)
	}
	gc.memberships[uid][group] = true
	gc.memberships[uid][GroupEveryone] = true
	gc.Unlock()
	for _, implied := range group.ImpliedGroups() {
		gc.AddMembership(uid, implied)
	}
}

// HasMembership returns true if the given uid is a member of the
// given group.
func (gc *GroupCollection) HasMembership(uid int64, group *Group) bool {
	gc.RLock()
	defer gc.RUnlock()
	return gc.memberships[uid][group]
}

// UserGroups returns all the groups the given uid is a member of
func (gc *GroupCollection) UserGroups(uid int64) map[*Group]bool {
	gc.RLock()
	defer gc.RUnlock()
	res := make(map[*Group]bool)
	for grp := range gc.memberships[uid] {
		res[grp] = true
	}
	return res
}

// RemoveAllMembershipsForUser removes the given uid from all groups
func (gc *GroupCollection) RemoveAllMembershipsForUser(uid int64) {
	gc.Lock()
	defer gc.Unlock()
	delete(gc.memberships, uid)
}

// GrantAccess grants the given permission on the given model to the
// members of the given group.
func (gc *GroupCollection) GrantAccess(model string, group *Group, perm Permission) {
	gc.Lock()
	defer gc.Unlock()
	if gc.acl[model] == nil {
		gc.acl[model] = make(map[*Group]Permission)
	}
	gc.acl[model][group] |= perm
}

// CheckPermission returns true if the given uid has the given
// permission on the given model. The superuser has all permissions.
func (gc *GroupCollection) CheckPermission(uid int64, model string, perm Permission) bool {
	if uid == SuperUserID {
		return true
	}
	gc.RLock()
	defer gc.RUnlock()
	for grp := range gc.memberships[uid] {
		if gc.acl[model][grp]&perm == perm {
			return true
		}
	}
	return false
}

var (
	// Registry is the GroupCollection of the application
	Registry *GroupCollection
	// GroupAdmin is the group of users with all permissions
	GroupAdmin *Group
	// GroupEveryone is a group that all users automatically belong to
	GroupEveryone *Group

	log logging.Logger
)

func init() {
	log = logging.GetLogger("security")
	Registry = &GroupCollection{
		groups:      make(map[string]*Group),
		memberships: make(map[int64]map[*Group]bool),
		acl:         make(map[string]map[*Group]Permission),
	}
	GroupAdmin = Registry.NewGroup("group_admin", "Administrators")
	GroupEveryone = Registry.NewGroup("group_everyone", "Everyone")
	Registry.AddMembership(SuperUserID, GroupAdmin)
}
