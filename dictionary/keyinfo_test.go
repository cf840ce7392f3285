package dictionary

import "testing"

func TestGroupByKeySortsAndGroups(t *testing.T) {
	tokens := []*Token{
		{Key: "b", Value: "v1", LID: 1, RID: 1},
		{Key: "a", Value: "v2", LID: 1, RID: 1},
		{Key: "a", Value: "v3", LID: 1, RID: 1},
	}
	keyInfoList, err := groupByKey(tokens)
	if err != nil {
		t.Fatalf("groupByKey: %v", err)
	}
	if len(keyInfoList) != 2 {
		t.Fatalf("len(keyInfoList) = %d, want 2", len(keyInfoList))
	}
	if keyInfoList[0].Key != "a" || keyInfoList[1].Key != "b" {
		t.Fatalf("keys out of order: %q, %q", keyInfoList[0].Key, keyInfoList[1].Key)
	}
	if len(keyInfoList[0].Tokens) != 2 {
		t.Fatalf("len(keyInfoList[0].Tokens) = %d, want 2", len(keyInfoList[0].Tokens))
	}
}

func TestGroupByKeyStablePreservesInputOrder(t *testing.T) {
	tokens := []*Token{
		{Key: "a", Value: "first", LID: 1, RID: 1},
		{Key: "a", Value: "second", LID: 1, RID: 1},
	}
	keyInfoList, err := groupByKey(tokens)
	if err != nil {
		t.Fatalf("groupByKey: %v", err)
	}
	if keyInfoList[0].Tokens[0].Token.Value != "first" {
		t.Fatalf("first token value = %q, want %q", keyInfoList[0].Tokens[0].Token.Value, "first")
	}
}

func TestGroupByKeyRejectsEmptyFields(t *testing.T) {
	if _, err := groupByKey([]*Token{{Key: "", Value: "v"}}); err == nil {
		t.Fatal("empty key: want error")
	}
	if _, err := groupByKey([]*Token{{Key: "k", Value: ""}}); err == nil {
		t.Fatal("empty value: want error")
	}
}
