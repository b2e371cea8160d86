package purchase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"noteshop/pkg/purchase"
)

func TestHasAccess(t *testing.T) {
	const songID = "song-1"

	tests := []struct {
		name      string
		purchases []*purchase.Purchase
		want      bool
	}{
		{
			name:      "nil list",
			purchases: nil,
			want:      false,
		},
		{
			name:      "empty list",
			purchases: []*purchase.Purchase{},
			want:      false,
		},
		{
			name: "completed song purchase",
			purchases: []*purchase.Purchase{
				{SongID: songID, Status: purchase.StatusCompleted, Type: purchase.TypeSong},
			},
			want: true,
		},
		{
			name: "pending purchase grants nothing",
			purchases: []*purchase.Purchase{
				{SongID: songID, Status: purchase.StatusPending, Type: purchase.TypeSong},
			},
			want: false,
		},
		{
			name: "declined purchase grants nothing",
			purchases: []*purchase.Purchase{
				{SongID: songID, Status: purchase.StatusDeclined, Type: purchase.TypeSong},
			},
			want: false,
		},
		{
			name: "completed subscription is not a song purchase",
			purchases: []*purchase.Purchase{
				{SongID: songID, Status: purchase.StatusCompleted, Type: purchase.TypeSubscription},
			},
			want: false,
		},
		{
			name: "other song does not match",
			purchases: []*purchase.Purchase{
				{SongID: "song-2", Status: purchase.StatusCompleted, Type: purchase.TypeSong},
			},
			want: false,
		},
		{
			name: "any single completed match suffices",
			purchases: []*purchase.Purchase{
				{SongID: songID, Status: purchase.StatusPending, Type: purchase.TypeSong},
				nil,
				{SongID: songID, Status: purchase.StatusCompleted, Type: purchase.TypeSong},
				{SongID: songID, Status: purchase.StatusDeclined, Type: purchase.TypeSong},
			},
			want: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, purchase.HasAccess("song-1", test.purchases))
		})
	}
}
