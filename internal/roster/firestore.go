// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package roster

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreCollection is the collection holding one document per student.
const FirestoreCollection = "students"

// NewFirestore returns a Source reading the roster from Firestore.
func NewFirestore(store *firestore.Client) *Firestore {
	return &Firestore{store: store}
}

// Firestore reads students from a Firestore collection ordered by name.
type Firestore struct {
	store *firestore.Client
}

func (f *Firestore) Students(ctx context.Context) ([]Student, error) {
	iter := f.store.Collection(FirestoreCollection).OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []Student
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("roster: listing students: %w", err)
		}
		var s Student
		if err := doc.DataTo(&s); err != nil {
			return nil, decodeError(err)
		}
		out = append(out, s)
	}
	return out, nil
}
