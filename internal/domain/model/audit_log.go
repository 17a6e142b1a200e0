package model

import "time"

// 注文ステータス更新、プロフィール更新など。
type AuditAction string

const (
	//注文ステータスを更新した操作。
	AuditActionUpdateOrderStatus AuditAction = "UPDATE_ORDER_STATUS"
	//プロフィールを更新した操作。
	AuditActionUpdateProfile AuditAction = "UPDATE_PROFILE"
	//パスワードを変更した操作。
	AuditActionChangePassword AuditAction = "CHANGE_PASSWORD"
)

// 何に対する操作か
type AuditResourceType string

const (
	AuditResourceOrder AuditResourceType = "order"
	AuditResourceUser  AuditResourceType = "user"
)

// 監査ログ。
// 「誰が」「何を」「どの対象に」「どう変えたか」を残す。
type AuditLog struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	//操作したユーザーのID。
	ActorUserID int64 `gorm:"not null;index"`

	Action AuditAction `gorm:"type:varchar(50);not null;index"`

	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index"`

	ResourceID int64 `gorm:"not null;index"`

	//JSON文字列で保存する。
	BeforeJSON string `gorm:"type:text"`
	AfterJSON  string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;index"`
}
