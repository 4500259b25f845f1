package service

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/pointwallet/internal/calculator"
	"github.com/mmynk/pointwallet/internal/chat"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/settlement"
	pb "github.com/mmynk/pointwallet/pkg/proto"
)

func millis(ms int64) *timestamppb.Timestamp {
	if ms == 0 {
		return nil
	}
	return timestamppb.New(time.UnixMilli(ms))
}

func toUser(u *models.User) *pb.User {
	return &pb.User{
		Id:            u.ID,
		StudentId:     u.StudentID,
		Name:          u.Name,
		Department:    u.Department,
		WalletAddress: u.WalletAddress,
		Role:          u.Role,
		CreatedAt:     millis(u.CreatedAt),
	}
}

func toUsers(users []*models.User) []*pb.User {
	out := make([]*pb.User, len(users))
	for i, u := range users {
		out[i] = toUser(u)
	}
	return out
}

func toSettlement(st *models.Settlement) *pb.Settlement {
	p := settlement.ProgressOf(st)
	out := &pb.Settlement{
		Id:             st.ID,
		CreatorId:      st.CreatorID,
		CreatorName:    st.CreatorName,
		CreatorAddress: st.CreatorAddress,
		TotalAmount:    st.TotalAmount,
		ChatId:         st.ChatID,
		Participants:   make([]*pb.Participant, len(st.Participants)),
		Progress:       &pb.Progress{PaidCount: int32(p.PaidCount), TotalCount: int32(p.TotalCount), Percent: int32(p.Percent)},
		CreatedAt:      st.CreatedAt,
	}
	shares := make([]calculator.Share, len(st.Participants))
	for i, e := range st.Participants {
		out.Participants[i] = &pb.Participant{
			UserId:    e.UID,
			Name:      e.Name,
			Address:   e.Address,
			Amount:    e.Amount,
			Status:    e.Status,
			PaidVia:   e.PaidVia,
			Signature: e.Signature,
			PaidAt:    e.PaidAt,
		}
		shares[i] = calculator.Share{UserID: e.UID, Amount: e.Amount}
	}
	out.CreatorShare = calculator.CreatorShare(st.TotalAmount, shares)
	return out
}

func toPaymentResponse(res *settlement.Result) *pb.PaymentResponse {
	return &pb.PaymentResponse{
		Settlement: toSettlement(res.Settlement),
		Completed:  res.Completed,
	}
}

func toRequest(r *models.Request) *pb.PaymentRequest {
	return &pb.PaymentRequest{
		Id:          r.ID,
		FromUserId:  r.FromUID,
		FromName:    r.FromName,
		FromAddress: r.FromAddress,
		ToUserId:    r.ToUID,
		ToName:      r.ToName,
		Amount:      r.Amount,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toRequests(list []*models.Request) []*pb.PaymentRequest {
	out := make([]*pb.PaymentRequest, len(list))
	for i, r := range list {
		out[i] = toRequest(r)
	}
	return out
}

func toChat(sum chat.Summary) *pb.Chat {
	c := sum.Chat
	return &pb.Chat{
		Id:            c.ID,
		Title:         c.Title,
		Participants:  c.Participants,
		Status:        c.Status,
		LastMessage:   c.LastMessage,
		LastMessageAt: c.LastMessageAt,
		LastSenderId:  c.LastSenderID,
		SettlementId:  c.SettlementID,
		CreatedBy:     c.CreatedBy,
		Unread:        sum.Unread,
	}
}

func toMessage(m *models.Message) *pb.Message {
	return &pb.Message{
		Id:         m.ID,
		ChatId:     m.ChatID,
		SenderId:   m.SenderID,
		SenderName: m.SenderName,
		Text:       m.Text,
		Kind:       m.Kind,
		CreatedAt:  m.CreatedAt,
	}
}

func toTransfer(t *models.Transfer) *pb.Transfer {
	return &pb.Transfer{
		Id:          t.ID,
		Purpose:     t.Purpose,
		Signature:   t.Signature,
		FromAddress: t.FromAddress,
		ToAddress:   t.ToAddress,
		Amount:      t.Amount,
		Status:      t.Status,
		Error:       t.Error,
		CreatedAt:   millis(t.CreatedAt),
	}
}

func toTransfers(list []*models.Transfer) []*pb.Transfer {
	out := make([]*pb.Transfer, len(list))
	for i, t := range list {
		out[i] = toTransfer(t)
	}
	return out
}

func toPurchase(p *models.Purchase) *pb.Purchase {
	return &pb.Purchase{
		Id:         p.ID,
		Points:     p.Points,
		Currency:   p.Currency,
		FiatAmount: p.FiatAmount,
		Signature:  p.Signature,
		CreatedAt:  p.CreatedAt,
	}
}
