package handler

import (
	"rentmate/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	rentalHandler       *RentalHandler
	appointmentHandler  *AppointmentHandler
	contractHandler     *ContractHandler
	favoriteHandler     *FavoriteHandler
	tenantRecordHandler *TenantRecordHandler
	chatHandler         *ChatHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	rentalUseCase *usecase.RentalUseCase,
	appointmentUseCase *usecase.AppointmentUseCase,
	contractUseCase *usecase.ContractUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	tenantRecordUseCase *usecase.TenantRecordUseCase,
	chatUseCase *usecase.ChatUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	rentalHandler = NewRentalHandler(rentalUseCase)
	appointmentHandler = NewAppointmentHandler(appointmentUseCase)
	contractHandler = NewContractHandler(contractUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	tenantRecordHandler = NewTenantRecordHandler(tenantRecordUseCase)
	chatHandler = NewChatHandler(chatUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetRentalHandler() *RentalHandler {
	return rentalHandler
}

func GetAppointmentHandler() *AppointmentHandler {
	return appointmentHandler
}

func GetContractHandler() *ContractHandler {
	return contractHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetTenantRecordHandler() *TenantRecordHandler {
	return tenantRecordHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}
